package prober

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeM4A builds a minimal mp4 container: an ftyp box and a moov box
// holding a version-0 mvhd with the given timescale and duration.
func writeM4A(t *testing.T, timescale, duration uint32) string {
	t.Helper()

	box := func(name string, payload []byte) []byte {
		out := make([]byte, 8, 8+len(payload))
		binary.BigEndian.PutUint32(out[0:4], uint32(8+len(payload)))
		copy(out[4:8], name)
		return append(out, payload...)
	}

	ftyp := box("ftyp", []byte("M4A \x00\x00\x00\x00M4A "))
	mvhd := make([]byte, 100)
	binary.BigEndian.PutUint32(mvhd[12:16], timescale)
	binary.BigEndian.PutUint32(mvhd[16:20], duration)
	moov := box("moov", box("mvhd", mvhd))

	path := filepath.Join(t.TempDir(), "audio.m4a")
	if err := os.WriteFile(path, append(ftyp, moov...), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNativeMP4Duration(t *testing.T) {
	tables := []struct {
		name      string
		timescale uint32
		duration  uint32
		want      time.Duration
	}{
		{"timescale 44100", 44100, 44100 * 60, time.Minute},
		{"timescale 600", 600, 600*90 + 300, 90*time.Second + 500*time.Millisecond},
		{"timescale 1000", 1000, 61500, 61*time.Second + 500*time.Millisecond},
	}
	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			path := writeM4A(t, table.timescale, table.duration)
			got, err := NewNative().Duration(context.Background(), path)
			if err != nil {
				t.Fatal(err)
			}
			if got != table.want {
				t.Errorf("Duration = %v, want %v", got, table.want)
			}
		})
	}
}

func TestNativeMP4ZeroTimescale(t *testing.T) {
	path := writeM4A(t, 0, 60000)
	if _, err := NewNative().Duration(context.Background(), path); err == nil {
		t.Error("zero timescale should be an error, not a bogus duration")
	}
}

func TestNativeMP4MissingMvhd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.m4a")
	if err := os.WriteFile(path, []byte("\x00\x00\x00\x14ftypM4A \x00\x00\x00\x00M4A "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewNative().Duration(context.Background(), path); err == nil {
		t.Error("container without a moov/mvhd box should be an error")
	}
}
