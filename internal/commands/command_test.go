package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/add grade papers tomorrow 5pm", TypeAdd},
		{"bulk", TypeBulk},
		{"done 3f9a", TypeDone},
		{"delete task 3f9a", TypeDelete},
		{"promote 3f9a", TypePromote},
		{"demote 77bc", TypeDemote},
		{"/draft weekly update tone:casual", TypeDraft},
		{"clear", TypeClear},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseAddKeepsFullText(t *testing.T) {
	cmd, err := Parse("/add call mom tomorrow at 6pm")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Add.Input != "call mom tomorrow at 6pm" {
		t.Fatalf("unexpected add input: %q", cmd.Add.Input)
	}
}

func TestParseDraftExtractsTone(t *testing.T) {
	cmd, err := Parse("draft apology email tone:formal")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cmd.Draft.Topic != "apology email" || cmd.Draft.Tone != "formal" {
		t.Fatalf("unexpected draft args: %+v", cmd.Draft)
	}
}

func TestParseDeleteRejectsBadKind(t *testing.T) {
	_, err := Parse("delete note 3f9a")
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid argument error, got %v", err)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := Parse("/unknown do x")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/done 3f9a")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Done: func(a DoneArgs) (Result, error) {
			called = true
			if a.ID != "3f9a" {
				t.Fatalf("unexpected id: %q", a.ID)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("clear")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
