package compiler

import (
	"errors"
	"strings"
	"testing"

	"github.com/zurustar/mybash/pkg/compiler/parser"
	"github.com/zurustar/mybash/pkg/script"
)

func TestCompile(t *testing.T) {
	program, err := Compile("name: String = 'Jone'\necho name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(program.Expressions) != 2 {
		t.Fatalf("expected 2 expressions, got %d", len(program.Expressions))
	}
}

func TestCompile_Error(t *testing.T) {
	source := "name: Str = 'Jone'\nage: Int = abc\necho age"

	program, err := Compile(source)
	if program != nil {
		t.Error("expected nil program on error")
	}

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T: %v", err, err)
	}
	if ce.Line != 2 || ce.Column != 12 {
		t.Errorf("location = %d:%d, want 2:12", ce.Line, ce.Column)
	}
	if !errors.Is(err, parser.ErrInvalidInt) {
		t.Error("expected errors.Is(err, parser.ErrInvalidInt)")
	}
	if !strings.Contains(ce.Context, "> 2 | age: Int = abc") {
		t.Errorf("Context = %q", ce.Context)
	}
}

func TestCompileScript_TagsFileName(t *testing.T) {
	s := &script.Script{FileName: "main.mb", Content: "ok: Bool = true"}

	_, err := CompileScript(s)
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CompileError, got %T: %v", err, err)
	}
	if ce.File != "main.mb" {
		t.Errorf("File = %q, want %q", ce.File, "main.mb")
	}
	if !errors.Is(err, parser.ErrInvalidDataType) {
		t.Errorf("expected ErrInvalidDataType, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "parser error at main.mb:1:5:") {
		t.Errorf("Error() = %q", err.Error())
	}
}
