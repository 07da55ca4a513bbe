package spot

import (
	"errors"
	"testing"
)

// frame records one select bracket: every byte written while CS was low
// and how many bytes were clocked back.
type frame struct {
	wrote []byte
	read  int
}

// mockSPI is a scripted SerialInterface. Responses are queued per Read
// call; unscripted reads return zero bytes, like an idle bus.
type mockSPI struct {
	t *testing.T

	csLow  bool
	frames []frame
	cur    frame

	rx [][]byte

	ready    bool
	writeErr error
	closed   bool
	inited   bool
}

func newMockSPI(t *testing.T) *mockSPI {
	t.Helper()
	return &mockSPI{t: t}
}

// script queues one response per byte, matching the sensor's one byte
// per transaction memory access.
func (m *mockSPI) script(data ...byte) {
	for _, b := range data {
		m.rx = append(m.rx, []byte{b})
	}
}

func (m *mockSPI) scriptChunk(data []byte) {
	m.rx = append(m.rx, data)
}

func (m *mockSPI) Read(count uint, start bool, stop bool) ([]byte, error) {
	if !m.csLow {
		m.t.Error("Read outside of a select bracket")
	}
	m.cur.read += int(count)

	if len(m.rx) == 0 {
		return make([]byte, count), nil
	}
	b := m.rx[0]
	m.rx = m.rx[1:]
	if uint(len(b)) != count {
		m.t.Errorf("scripted %d bytes, driver asked for %d", len(b), count)
	}
	return b, nil
}

func (m *mockSPI) Write(data []byte, start bool, stop bool) (uint, error) {
	if !m.csLow {
		m.t.Error("Write outside of a select bracket")
	}
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	m.cur.wrote = append(m.cur.wrote, data...)
	return uint(len(data)), nil
}

func (m *mockSPI) SetCS(high bool) error {
	if high == !m.csLow {
		m.t.Errorf("redundant SetCS(%t)", high)
	}
	if high {
		m.frames = append(m.frames, m.cur)
		m.cur = frame{}
	}
	m.csLow = !high
	return nil
}

func (m *mockSPI) DataReady() (bool, error) {
	return m.ready, nil
}

func (m *mockSPI) Init() error {
	m.inited = true
	return nil
}

func (m *mockSPI) Close() error {
	m.closed = true
	return nil
}

var errMockWrite = errors.New("mock write failure")
