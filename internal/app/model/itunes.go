package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sa6mwa/mp3duration"
)

// Explicit is a tri-state explicit flag. An unset value inherits the
// channel default at resolve time.
type Explicit struct {
	set   bool
	value bool
}

// ExplicitValue returns a set Explicit holding v. Mostly for tests and
// the init scaffold.
func ExplicitValue(v bool) Explicit {
	return Explicit{set: true, value: v}
}

func (e *Explicit) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		e.set = true
		e.value = b
		return nil
	}
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(buf)) {
	case "":
		e.set = false
		e.value = false
	case "yes", "true":
		e.set = true
		e.value = true
	default:
		e.set = true
		e.value = false
	}
	return nil
}

// MarshalYAML writes yes or no, the form iTunes expects.
func (e Explicit) MarshalYAML() (interface{}, error) {
	return e.String(), nil
}

// Known reports whether the flag was present in the document.
func (e Explicit) Known() bool {
	return e.set
}

// Bool returns the flag value, false when unset.
func (e Explicit) Bool() bool {
	return e.set && e.value
}

// Or returns the flag value, or def when the flag was not present.
func (e Explicit) Or(def bool) bool {
	if !e.set {
		return def
	}
	return e.value
}

func (e Explicit) String() string {
	if e.Bool() {
		return "yes"
	}
	return "no"
}

// Duration is a declared episode duration. Accepts H:MM:SS, MM:SS or
// plain integer seconds in YAML; zero means "probe the media file".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var seconds int64
	if err := unmarshal(&seconds); err == nil {
		if seconds < 0 {
			return fmt.Errorf("duration seconds must not be negative, got %d", seconds)
		}
		d.Duration = time.Duration(seconds) * time.Second
		return nil
	}
	var buf string
	if err := unmarshal(&buf); err != nil {
		return err
	}
	durationString := strings.TrimSpace(buf)
	if durationString == "" {
		d.Duration = 0
		return nil
	}
	values := strings.Split(durationString, ":")
	if len(values) < 2 || len(values) > 3 {
		return fmt.Errorf("duration must be in the format HH:MM:SS or MM:SS, not %q", durationString)
	}
	var total time.Duration
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", durationString, err)
		}
		if n < 0 {
			return fmt.Errorf("invalid duration %q: negative component", durationString)
		}
		total = total*60 + time.Duration(n)*time.Second
	}
	d.Duration = total
	return nil
}

// MarshalYAML formats the duration the way itunes:duration wants it
// (HH:MM:SS).
func (d Duration) MarshalYAML() (interface{}, error) {
	return mp3duration.FormatDuration(d.Duration), nil
}

func (d Duration) String() string {
	return mp3duration.FormatDuration(d.Duration)
}
