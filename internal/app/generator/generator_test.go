package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/podserve/podcastify/internal/infra/adapters/configurator"
	"github.com/podserve/podcastify/internal/infra/adapters/renderer"
)

func TestRunEndToEnd(t *testing.T) {
	configsRoot := t.TempDir()
	publicRoot := t.TempDir()
	if err := os.WriteFile(filepath.Join(configsRoot, "myshow-podcast.yaml"), []byte(`title: My Show
author-name: Jane Host
description: A show about things.
episodes:
  - file: e1.mp3
    title: Pilot
    pub_date: 2025-01-01T08:00:00Z
`), 0644); err != nil {
		t.Fatal(err)
	}
	writeMedia(t, filepath.Join(publicRoot, "myshow"), "e1.mp3")

	r, err := renderer.New()
	if err != nil {
		t.Fatal(err)
	}
	settings := Settings{
		ConfigsRoot: configsRoot,
		PublicRoot:  publicRoot,
		BaseURL:     "https://pods.example.com",
	}
	g := New(settings, configurator.New(configsRoot), fixedProbe{}, r, nil)

	report, err := g.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Attempted != 1 || report.Succeeded != 1 || len(report.Failed) != 0 {
		t.Fatalf("report = %+v, want one success", report)
	}

	feedPath := filepath.Join(publicRoot, "myshow.xml")
	first, err := os.ReadFile(feedPath)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<title>My Show</title>",
		"<title>Pilot</title>",
		"Wed, 01 Jan 2025 08:00:00 +0000",
		`url="https://pods.example.com/myshow/e1.mp3"`,
		"<itunes:author>Jane Host</itunes:author>",
	} {
		if !strings.Contains(string(first), want) {
			t.Errorf("feed missing %q", want)
		}
	}

	// Unchanged input must reproduce the feed byte for byte.
	if _, err := g.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(feedPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run produced different feed bytes")
	}
}

func TestRunFailingShowContinues(t *testing.T) {
	configsRoot := t.TempDir()
	publicRoot := t.TempDir()
	// "broken" has no media directory, "working" does.
	for _, name := range []string{"broken", "working"} {
		if err := os.WriteFile(filepath.Join(configsRoot, name+"-podcast.yaml"),
			[]byte("title: "+name+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	writeMedia(t, filepath.Join(publicRoot, "working"), "e1.mp3")

	r, err := renderer.New()
	if err != nil {
		t.Fatal(err)
	}
	settings := Settings{ConfigsRoot: configsRoot, PublicRoot: publicRoot, BaseURL: "https://pods.example.com"}
	g := New(settings, configurator.New(configsRoot), fixedProbe{}, r, nil)

	report, err := g.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if report.Attempted != 2 || report.Succeeded != 1 {
		t.Errorf("report = %+v, want 1 of 2 succeeded", report)
	}
	if len(report.Failed) != 1 || report.Failed[0] != "broken" {
		t.Errorf("Failed = %v, want [broken]", report.Failed)
	}
	if !report.OK() {
		t.Error("partial success should still be OK")
	}
	if _, err := os.Stat(filepath.Join(publicRoot, "working.xml")); err != nil {
		t.Errorf("working feed not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(publicRoot, "broken.xml")); err == nil {
		t.Error("broken feed should not exist")
	}
}

func TestRunReportOK(t *testing.T) {
	tables := []struct {
		name   string
		report RunReport
		want   bool
	}{
		{"nothing to do", RunReport{}, true},
		{"all succeed", RunReport{Attempted: 2, Succeeded: 2}, true},
		{"partial", RunReport{Attempted: 2, Succeeded: 1, Failed: []string{"a"}}, true},
		{"all fail", RunReport{Attempted: 2, Failed: []string{"a", "b"}}, false},
	}
	for _, table := range tables {
		if got := table.report.OK(); got != table.want {
			t.Errorf("%s: OK() = %v, want %v", table.name, got, table.want)
		}
	}
}

func TestWriteSkipsUnchanged(t *testing.T) {
	g, publicRoot := newTestGenerator(t, nil)
	path := filepath.Join(publicRoot, "myshow.xml")
	content := []byte("<rss>feed</rss>\n")
	ctx := context.Background()

	wrote, err := g.write(ctx, path, content)
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Error("first write should report wrote=true")
	}
	wrote, err = g.write(ctx, path, content)
	if err != nil {
		t.Fatal(err)
	}
	if wrote {
		t.Error("identical content should skip the write")
	}
	wrote, err = g.write(ctx, path, []byte("<rss>changed</rss>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Error("changed content should write")
	}
}

func TestWriteDryRun(t *testing.T) {
	publicRoot := t.TempDir()
	g := New(Settings{PublicRoot: publicRoot, BaseURL: "https://pods.example.com", DryRun: true}, nil, nil, nil, nil)
	path := filepath.Join(publicRoot, "myshow.xml")

	wrote, err := g.write(context.Background(), path, []byte("<rss/>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !wrote {
		t.Error("dry run should still report a pending write")
	}
	if _, err := os.Stat(path); err == nil {
		t.Error("dry run must not create the feed file")
	}
}

func TestJoinURL(t *testing.T) {
	tables := []struct {
		base string
		file string
		want string
	}{
		{"https://pods.example.com", "e1.mp3", "https://pods.example.com/myshow/e1.mp3"},
		{"https://pods.example.com/", "e1.mp3", "https://pods.example.com/myshow/e1.mp3"},
		{"https://pods.example.com", "my file.mp3", "https://pods.example.com/myshow/my%20file.mp3"},
	}
	for _, table := range tables {
		if got := joinURL(table.base, "myshow", table.file); got != table.want {
			t.Errorf("joinURL(%q, myshow, %q) = %q, want %q", table.base, table.file, got, table.want)
		}
	}
}
