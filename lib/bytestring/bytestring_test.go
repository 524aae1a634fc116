// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bytestring_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bureau-foundation/fixedstring/lib/bytestring"
)

func TestFromBytes(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		value    string
		wantErr  error
	}{
		{name: "empty", capacity: 8, value: ""},
		{name: "simple", capacity: 8, value: "hello"},
		{name: "exactly-full", capacity: 5, value: "hello"},
		{name: "one-over", capacity: 4, value: "hello", wantErr: bytestring.ErrCapacityExceeded},
		{name: "nul-byte", capacity: 8, value: "he\x00lo", wantErr: bytestring.ErrInvalidCodeUnit},
		{name: "high-bit", capacity: 8, value: "caf\xc3\xa9", wantErr: bytestring.ErrInvalidCodeUnit},
		{name: "del-is-valid", capacity: 8, value: "a\x7fb"},
		{name: "control-is-valid", capacity: 8, value: "a\tb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := bytestring.FromBytes(tt.capacity, []byte(tt.value))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FromBytes() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromBytes: %v", err)
			}
			if s.String() != tt.value {
				t.Errorf("String() = %q, want %q", s.String(), tt.value)
			}
			if s.Len() != len(tt.value) {
				t.Errorf("Len() = %d, want %d", s.Len(), len(tt.value))
			}
			if s.Capacity() != tt.capacity {
				t.Errorf("Capacity() = %d, want %d", s.Capacity(), tt.capacity)
			}
		})
	}
}

func TestNewPanicsOnBadCapacity(t *testing.T) {
	for _, capacity := range []int{-1, 0, bytestring.MaxCapacity + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", capacity)
				}
			}()
			bytestring.New(capacity)
		}()
	}
}

func TestPushPop(t *testing.T) {
	s := bytestring.New(3)
	for _, b := range []byte("abc") {
		if err := s.Push(b); err != nil {
			t.Fatalf("Push(%q): %v", b, err)
		}
	}
	if !s.IsFull() {
		t.Error("IsFull() = false after filling to capacity")
	}
	if err := s.Push('d'); !errors.Is(err, bytestring.ErrCapacityExceeded) {
		t.Errorf("Push on full string: error = %v, want ErrCapacityExceeded", err)
	}
	if s.String() != "abc" {
		t.Errorf("failed Push mutated the string: %q", s.String())
	}

	b, ok := s.Pop()
	if !ok || b != 'c' {
		t.Errorf("Pop() = %q, %v, want 'c', true", b, ok)
	}
	s.Pop()
	s.Pop()
	if _, ok := s.Pop(); ok {
		t.Error("Pop() on empty string reported ok")
	}
	if !s.IsEmpty() {
		t.Error("IsEmpty() = false after popping everything")
	}
}

func TestPushRejectsInvalidUnit(t *testing.T) {
	s := bytestring.New(8)
	for _, b := range []byte{0x00, 0x80, 0xff} {
		if err := s.Push(b); !errors.Is(err, bytestring.ErrInvalidCodeUnit) {
			t.Errorf("Push(0x%02x): error = %v, want ErrInvalidCodeUnit", b, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("rejected pushes changed length to %d", s.Len())
	}
}

func TestAppend(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("ab"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if err := s.Append(3, 'x'); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if s.String() != "abxxx" {
		t.Errorf("String() = %q, want \"abxxx\"", s.String())
	}
	if err := s.Append(4, 'y'); !errors.Is(err, bytestring.ErrCapacityExceeded) {
		t.Errorf("overflowing Append: error = %v, want ErrCapacityExceeded", err)
	}
	if s.String() != "abxxx" {
		t.Errorf("failed Append mutated the string: %q", s.String())
	}
	if err := s.Append(1, 0x00); !errors.Is(err, bytestring.ErrInvalidCodeUnit) {
		t.Errorf("Append of NUL: error = %v, want ErrInvalidCodeUnit", err)
	}
}

// A negative count must never slip past the capacity guard and shrink
// the string via unsigned wraparound.
func TestAppendPanicsOnNegativeCount(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("abcde"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Append with negative count did not panic")
		}
		if s.String() != "abcde" {
			t.Errorf("Append with negative count mutated the string: %q", s.String())
		}
	}()
	_ = s.Append(-2, 'x')
}

func TestInsertBytes(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		idx     int
		value   string
		want    string
		wantErr error
	}{
		{name: "middle", initial: "ho", idx: 1, value: "ell", want: "hello"},
		{name: "front", initial: "bc", idx: 0, value: "a", want: "abc"},
		{name: "end", initial: "ab", idx: 2, value: "c", want: "abc"},
		{name: "into-empty", initial: "", idx: 0, value: "abc", want: "abc"},
		{name: "overflow", initial: "abcdef", idx: 3, value: "ghij", wantErr: bytestring.ErrCapacityExceeded},
		{name: "invalid-unit", initial: "ab", idx: 1, value: "x\x00y", wantErr: bytestring.ErrInvalidCodeUnit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := bytestring.FromBytes(8, []byte(tt.initial))
			if err != nil {
				t.Fatalf("FromBytes: %v", err)
			}
			err = s.InsertBytes(tt.idx, []byte(tt.value))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("InsertBytes() error = %v, want %v", err, tt.wantErr)
				}
				if s.String() != tt.initial {
					t.Errorf("failed InsertBytes mutated the string: %q", s.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("InsertBytes: %v", err)
			}
			if s.String() != tt.want {
				t.Errorf("String() = %q, want %q", s.String(), tt.want)
			}
		})
	}
}

func TestInsertBytesPanicsOutOfBounds(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("ab"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("InsertBytes past the end did not panic")
		}
	}()
	_ = s.InsertBytes(3, []byte("x"))
}

func TestRemove(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("hxello"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if b := s.Remove(1); b != 'x' {
		t.Errorf("Remove(1) = %q, want 'x'", b)
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q, want \"hello\"", s.String())
	}
	s.RemoveRange(1, 3)
	if s.String() != "ho" {
		t.Errorf("after RemoveRange: %q, want \"ho\"", s.String())
	}
}

func TestTruncate(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("hello"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	s.Truncate(7) // longer than content: no-op
	if s.String() != "hello" {
		t.Errorf("Truncate(7) changed content to %q", s.String())
	}
	s.Truncate(2)
	if s.String() != "he" {
		t.Errorf("Truncate(2): %q, want \"he\"", s.String())
	}
	s.Truncate(0)
	if !s.IsEmpty() {
		t.Error("Truncate(0) left content behind")
	}
}

func TestStripPrefixSuffix(t *testing.T) {
	s, err := bytestring.FromBytes(16, []byte("prefix-body-end"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if !s.StripPrefix([]byte("prefix-")) {
		t.Fatal("StripPrefix did not find the prefix")
	}
	if s.String() != "body-end" {
		t.Errorf("after StripPrefix: %q", s.String())
	}
	if s.StripPrefix([]byte("nope")) {
		t.Error("StripPrefix reported an absent prefix")
	}
	if !s.StripSuffix([]byte("-end")) {
		t.Fatal("StripSuffix did not find the suffix")
	}
	if s.String() != "body" {
		t.Errorf("after StripSuffix: %q", s.String())
	}
	if s.StripSuffix([]byte("nope")) {
		t.Error("StripSuffix reported an absent suffix")
	}
}

func TestRetain(t *testing.T) {
	s, err := bytestring.FromBytes(16, []byte("a1b2c3"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	s.Retain(func(b byte) bool { return b < '0' || b > '9' })
	if s.String() != "abc" {
		t.Errorf("Retain kept %q, want \"abc\"", s.String())
	}
}

func TestFindRFind(t *testing.T) {
	s, err := bytestring.FromBytes(16, []byte("ab/cd/ef"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if idx, ok := s.Find([]byte("/")); !ok || idx != 2 {
		t.Errorf("Find(/) = %d, %v, want 2, true", idx, ok)
	}
	if idx, ok := s.RFind([]byte("/")); !ok || idx != 5 {
		t.Errorf("RFind(/) = %d, %v, want 5, true", idx, ok)
	}
	if _, ok := s.Find([]byte("zz")); ok {
		t.Error("Find reported an absent needle")
	}
	if idx, ok := s.Find(nil); !ok || idx != 0 {
		t.Errorf("Find(empty) = %d, %v, want 0, true", idx, ok)
	}
}

func TestAtSubstring(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("hello"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if b, ok := s.At(1); !ok || b != 'e' {
		t.Errorf("At(1) = %q, %v", b, ok)
	}
	if _, ok := s.At(5); ok {
		t.Error("At(5) reported ok past the end")
	}
	if _, ok := s.At(-1); ok {
		t.Error("At(-1) reported ok")
	}
	sub, ok := s.Substring(1, 4)
	if !ok || !bytes.Equal(sub, []byte("ell")) {
		t.Errorf("Substring(1, 4) = %q, %v", sub, ok)
	}
	if _, ok := s.Substring(2, 6); ok {
		t.Error("Substring past the end reported ok")
	}
	if _, ok := s.Substring(3, 2); ok {
		t.Error("inverted Substring range reported ok")
	}
}

func TestAssign(t *testing.T) {
	small, err := bytestring.FromBytes(4, []byte("abcd"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	wide := bytestring.New(16)
	if err := wide.Assign(&small); err != nil {
		t.Fatalf("widening Assign: %v", err)
	}
	if wide.String() != "abcd" || wide.Capacity() != 16 {
		t.Errorf("after Assign: content %q capacity %d", wide.String(), wide.Capacity())
	}

	long, err := bytestring.FromBytes(16, []byte("abcdefgh"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	narrow := bytestring.New(4)
	if err := narrow.Assign(&long); !errors.Is(err, bytestring.ErrCapacityExceeded) {
		t.Errorf("narrowing Assign: error = %v, want ErrCapacityExceeded", err)
	}
	if narrow.Len() != 0 {
		t.Error("failed Assign mutated the target")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "abc", b: "abc", want: 0},
		{name: "less", a: "abc", b: "abd", want: -1},
		{name: "greater", a: "abd", b: "abc", want: 1},
		{name: "prefix-is-less", a: "ab", b: "abc", want: -1},
		{name: "empty-is-least", a: "", b: "a", want: -1},
		{name: "byte-order-not-locale", a: "B", b: "a", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := bytestring.FromBytes(8, []byte(tt.a))
			if err != nil {
				t.Fatalf("FromBytes(a): %v", err)
			}
			b, err := bytestring.FromBytes(16, []byte(tt.b))
			if err != nil {
				t.Fatalf("FromBytes(b): %v", err)
			}
			if got := a.Compare(&b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if gotEq, wantEq := a.Equal(&b), tt.want == 0; gotEq != wantEq {
				t.Errorf("Equal(%q, %q) = %v, want %v", tt.a, tt.b, gotEq, wantEq)
			}
		})
	}
}

func TestCopyIsIndependent(t *testing.T) {
	original, err := bytestring.FromBytes(8, []byte("abc"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	duplicate := original
	if err := duplicate.PushBytes([]byte("def")); err != nil {
		t.Fatalf("PushBytes: %v", err)
	}
	if original.String() != "abc" {
		t.Errorf("mutating a copy changed the original: %q", original.String())
	}
	if duplicate.String() != "abcdef" {
		t.Errorf("copy content = %q, want \"abcdef\"", duplicate.String())
	}
}

func TestFromNulTerminated(t *testing.T) {
	s, err := bytestring.FromNulTerminated(8, []byte("hello\x00junk"))
	if err != nil {
		t.Fatalf("FromNulTerminated: %v", err)
	}
	if s.String() != "hello" {
		t.Errorf("String() = %q, want \"hello\"", s.String())
	}

	if _, err := bytestring.FromNulTerminated(3, []byte("hello\x00")); !errors.Is(err, bytestring.ErrCapacityExceeded) {
		t.Errorf("oversized source: error = %v, want ErrCapacityExceeded", err)
	}

	truncated := bytestring.FromNulTerminatedTruncated(3, []byte("hello\x00"))
	if truncated.String() != "hel" {
		t.Errorf("truncated String() = %q, want \"hel\"", truncated.String())
	}
}

func TestFromNulTerminatedPanicsWithoutTerminator(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unterminated buffer did not panic")
		}
	}()
	bytestring.FromNulTerminated(8, []byte("hello"))
}

func TestUncheckedView(t *testing.T) {
	s, err := bytestring.FromBytes(8, []byte("abc"))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}

	raw := s.Unchecked().Bytes()
	if !bytes.Equal(raw, []byte("abc\x00")) {
		t.Errorf("Unchecked().Bytes() = %q, want \"abc\\x00\"", raw)
	}
	if p := s.Unchecked().Pointer(); *p != 'a' {
		t.Errorf("*Pointer() = %q, want 'a'", *p)
	}

	// Peer-library pattern: fill the buffer directly, then declare the
	// length.
	view := s.Unchecked()
	view.Set(0, 'x')
	view.Set(1, 'y')
	view.SetLen(2)
	if s.String() != "xy" {
		t.Errorf("after unchecked writes: %q, want \"xy\"", s.String())
	}
	if !bytes.Equal(s.Unchecked().Bytes(), []byte("xy\x00")) {
		t.Error("NUL terminator not maintained by SetLen")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "printable", value: "hello", want: "hello"},
		{name: "tab-newline", value: "a\tb\n", want: `a\tb\n`},
		{name: "carriage-return", value: "a\r", want: `a\r`},
		{name: "hex", value: "\x00\xff", want: `\x00\xff`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bytestring.Escape([]byte(tt.value)); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
