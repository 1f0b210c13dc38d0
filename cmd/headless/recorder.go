package main

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/ha2san/void-survivor/game"
)

// Recorder appends msgpack-encoded snapshots to a stream
type Recorder struct {
	w     *bufio.Writer
	enc   *msgpack.Encoder
	close func() error
	count int
}

// NewRecorder records into w
func NewRecorder(w io.Writer) *Recorder {
	bw := bufio.NewWriter(w)
	return &Recorder{
		w:     bw,
		enc:   msgpack.NewEncoder(bw),
		close: func() error { return nil },
	}
}

// CreateRecorder records into a new file at path
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create recording %s", path)
	}
	r := NewRecorder(f)
	r.close = f.Close
	return r, nil
}

// Record appends one snapshot
func (r *Recorder) Record(snap game.Snapshot) error {
	if err := r.enc.Encode(&snap); err != nil {
		return errors.Wrap(err, "encode snapshot")
	}
	r.count++
	return nil
}

// Count returns the number of snapshots written
func (r *Recorder) Count() int {
	return r.count
}

// Close flushes buffered snapshots and closes the underlying file
func (r *Recorder) Close() error {
	if err := r.w.Flush(); err != nil {
		r.close()
		return errors.Wrap(err, "flush recording")
	}
	return r.close()
}

// ReadRecording decodes every snapshot in a recording stream
func ReadRecording(rd io.Reader) ([]game.Snapshot, error) {
	dec := msgpack.NewDecoder(rd)
	var snaps []game.Snapshot
	for {
		var snap game.Snapshot
		if err := dec.Decode(&snap); err != nil {
			if errors.Cause(err) == io.EOF {
				return snaps, nil
			}
			return snaps, errors.Wrap(err, "decode snapshot")
		}
		snaps = append(snaps, snap)
	}
}
