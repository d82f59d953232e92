package system

import (
	"bytes"
	"io"
	"io/fs"
	"sync"
)

// SpawnCall records one Spawn or ReplaceProcess invocation.
type SpawnCall struct {
	Name string
	Args []string
}

// MockSpawner implements Spawner for testing. Each Spawn produces a
// MockProcess whose stdout replays the next entry of Outputs (or Output
// when Outputs is exhausted), simulating what the picker chose.
type MockSpawner struct {
	mu sync.Mutex

	// Output is what the fake picker writes before exiting. Empty
	// output simulates a cancelled selection.
	Output []byte

	// Outputs, when non-empty, scripts successive Spawn calls; each
	// call consumes one entry.
	Outputs [][]byte

	// Error injection
	SpawnErr   error
	WriteErr   error
	ReadErr    error
	CloseErr   error
	WaitErr    error
	ReplaceErr error

	// Call records
	Calls    []SpawnCall
	Replaced []SpawnCall

	procs []*MockProcess
}

func (m *MockSpawner) Spawn(name string, args ...string) (Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, SpawnCall{Name: name, Args: args})
	if m.SpawnErr != nil {
		return nil, m.SpawnErr
	}

	out := m.Output
	if len(m.Outputs) > 0 {
		out = m.Outputs[0]
		m.Outputs = m.Outputs[1:]
	}

	p := &MockProcess{spawner: m, output: bytes.NewReader(out)}
	m.procs = append(m.procs, p)
	return p, nil
}

func (m *MockSpawner) ReplaceProcess(name string, args ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Replaced = append(m.Replaced, SpawnCall{Name: name, Args: args})
	return m.ReplaceErr
}

// Processes returns every MockProcess spawned so far.
func (m *MockSpawner) Processes() []*MockProcess {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockProcess(nil), m.procs...)
}

// MockProcess implements Process for testing.
type MockProcess struct {
	spawner *MockSpawner

	mu     sync.Mutex
	input  bytes.Buffer
	output *bytes.Reader
	closed bool
	waited bool
}

func (p *MockProcess) Stdin() io.WriteCloser { return mockStdin{p} }

func (p *MockProcess) Stdout() io.Reader {
	if p.spawner.ReadErr != nil {
		return errReader{p.spawner.ReadErr}
	}
	return p.output
}

func (p *MockProcess) Wait() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.waited = true
	return p.spawner.WaitErr
}

// Input returns everything written to the process's stdin.
func (p *MockProcess) Input() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.input.Bytes()...)
}

// StdinClosed reports whether the input stream was closed.
func (p *MockProcess) StdinClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Waited reports whether the process was waited on (reaped).
func (p *MockProcess) Waited() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.waited
}

type mockStdin struct {
	p *MockProcess
}

func (w mockStdin) Write(b []byte) (int, error) {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	if w.p.spawner.WriteErr != nil {
		return 0, w.p.spawner.WriteErr
	}
	return w.p.input.Write(b)
}

func (w mockStdin) Close() error {
	w.p.mu.Lock()
	defer w.p.mu.Unlock()
	w.p.closed = true
	return w.p.spawner.CloseErr
}

type errReader struct {
	err error
}

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// MockFS implements FileSystem for testing.
type MockFS struct {
	mu    sync.RWMutex
	files map[string][]byte

	// Error injection
	ReadFileErr error
}

// NewMockFS creates a new MockFS with an empty filesystem.
func NewMockFS() *MockFS {
	return &MockFS{files: make(map[string][]byte)}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return append([]byte(nil), data...), nil
}

func (m *MockFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok
}
