package spot

import "io"

func (s *Spot) setCSLow() error {
	return s.spi.SetCS(false)
}
func (s *Spot) setCSHigh() error {
	return s.spi.SetCS(true)
}

func (s *Spot) write(p []byte) (int, error) {
	n, err := s.spi.Write(p, false, false)
	return int(n), err
}
func (s *Spot) read(p []byte) (int, error) {
	b, err := s.spi.Read(uint(len(p)), false, false)
	if err != nil {
		return 0, err
	}
	if len(p) < len(b) {
		return 0, io.ErrShortBuffer
	}
	return copy(p, b), err
}
