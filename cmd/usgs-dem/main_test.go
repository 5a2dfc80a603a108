package main

import "testing"

func TestLookup(t *testing.T) {
	cmd, args := lookup([]string{"preview", "-in", "a.dem"})
	if cmd.name != "preview" || len(args) != 2 {
		t.Fatalf("unexpected lookup: %s %v", cmd.name, args)
	}

	cmd, args = lookup([]string{"/data/ELEV1.dem"})
	if cmd.name != "info" || len(args) != 1 || args[0] != "/data/ELEV1.dem" {
		t.Fatalf("expected bare path to run info, got %s %v", cmd.name, args)
	}
}
