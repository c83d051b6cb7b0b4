package humanreadable

import (
	"fmt"
	"testing"
)

func ExampleIEC() {
	fmt.Println(IEC(50000))
	fmt.Println(IEC(1500000))
	// Output:
	// 48.8 KiB
	// 1.4 MiB
}

func ExampleSI() {
	fmt.Println(SI(50000))
	fmt.Println(SI(1500000))
	// Output:
	// 50.0 kB
	// 1.5 MB
}

func TestIEC(t *testing.T) {
	tables := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{50000, "48.8 KiB"},
		{1500000, "1.4 MiB"},
		{15555555, "14.8 MiB"},
		{1900000000, "1.8 GiB"},
		{20000000000000, "18.2 TiB"},
		{2000000000000000, "1.8 PiB"},
		{2000000000000000000, "1.7 EiB"},
	}
	for _, table := range tables {
		if got := IEC(table.bytes); got != table.want {
			t.Errorf("IEC(%d) = %s, want %s", table.bytes, got, table.want)
		}
	}
}

func TestSI(t *testing.T) {
	tables := []struct {
		bytes int64
		want  string
	}{
		{999, "999 B"},
		{1000, "1.0 kB"},
		{1023, "1.0 kB"},
		{12350, "12.3 kB"},
		{12351, "12.4 kB"},
		{1500000, "1.5 MB"},
		{1900000000, "1.9 GB"},
		{19999999999999, "20.0 TB"},
		{1999999999999999, "2.0 PB"},
		{2000000000000000000, "2.0 EB"},
	}
	for _, table := range tables {
		if got := SI(table.bytes); got != table.want {
			t.Errorf("SI(%d) = %s, want %s", table.bytes, got, table.want)
		}
	}
}
