package timeval

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
)

func mustFromYMD(t *testing.T, y, m, d, h int) TimeValue {
	t.Helper()
	tv, err := FromYMD(y, m, d, h)
	if err != nil {
		t.Fatalf("FromYMD(%d,%d,%d,%d): %v", y, m, d, h, err)
	}
	return tv
}

func TestEpochIsZero(t *testing.T) {
	tv := mustFromYMD(t, 1, 1, 1, 0)
	if tv.Hours() != 0 {
		t.Fatalf("epoch: got %d hours, want 0", tv.Hours())
	}
}

func TestZeroValueIsEpoch(t *testing.T) {
	var tv TimeValue
	y, m, d, h := tv.YMD()
	if y != 1 || m != 1 || d != 1 || h != 0 {
		t.Fatalf("zero value: got %d/%d/%d %d, want 1/1/1 0", y, m, d, h)
	}
}

func TestRoundTrip(t *testing.T) {
	dates := [][4]int{
		{1, 1, 1, 0},
		{1, 1, 2, 6},
		{1, 12, 31, 23},
		{2, 6, 15, 18},
		{4, 2, 29, 12},    // leap year
		{100, 2, 28, 0},   // century non-leap
		{400, 2, 29, 0},   // 400-year leap
		{1900, 2, 28, 23},
		{2000, 2, 29, 0},
		{-1, 7, 4, 9},     // pre-epoch
		{0, 2, 29, 0},     // year 0 is a leap year (astronomical numbering)
		{9999, 12, 31, 23},
	}
	for _, c := range dates {
		tv := mustFromYMD(t, c[0], c[1], c[2], c[3])
		y, m, d, h := tv.YMD()
		if y != c[0] || m != c[1] || d != c[2] || h != c[3] {
			t.Fatalf("round trip %v: got %d/%d/%d %d", c, y, m, d, h)
		}
	}
}

func TestDayTwoHourSix(t *testing.T) {
	tv := mustFromYMD(t, 1, 1, 2, 6)
	if tv.Hours() != 30 {
		t.Fatalf("1/1/2 06:00: got %d hours, want 30", tv.Hours())
	}
}

func TestPreEpochNegativeHours(t *testing.T) {
	tv := mustFromYMD(t, 0, 12, 31, 23)
	if tv.Hours() != -1 {
		t.Fatalf("hour before epoch: got %d, want -1", tv.Hours())
	}
	y, m, d, h := tv.YMD()
	if y != 0 || m != 12 || d != 31 || h != 23 {
		t.Fatalf("YMD of -1h: got %d/%d/%d %d", y, m, d, h)
	}
}

func TestFromYMDInvalid(t *testing.T) {
	cases := [][4]int{
		{1, 0, 1, 0},   // month low
		{1, 13, 1, 0},  // month high
		{1, 1, 0, 0},   // day low
		{1, 4, 31, 0},  // April has 30 days
		{1, 2, 29, 0},  // year 1 is not leap
		{1900, 2, 29, 0},
		{1, 1, 1, -1},  // hour low
		{1, 1, 1, 24},  // hour high
	}
	for _, c := range cases {
		if _, err := FromYMD(c[0], c[1], c[2], c[3]); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("FromYMD(%v): got %v, want ErrInvalidDate", c, err)
		}
	}
}

func TestFromYMDLeapDayValid(t *testing.T) {
	for _, y := range []int{4, 400, 2000, 0, -4} {
		if _, err := FromYMD(y, 2, 29, 0); err != nil {
			t.Fatalf("Feb 29 year %d should be valid: %v", y, err)
		}
	}
}

func TestFromYMDYearOutOfRange(t *testing.T) {
	if _, err := FromYMD(2_000_000_000, 1, 1, 0); !errors.Is(err, ErrOverflow) {
		t.Fatalf("huge year: got %v, want ErrOverflow", err)
	}
	if _, err := FromYMD(-2_000_000_000, 1, 1, 0); !errors.Is(err, ErrOverflow) {
		t.Fatalf("huge negative year: got %v, want ErrOverflow", err)
	}
}

func TestAdd(t *testing.T) {
	tv := mustFromYMD(t, 1, 1, 1, 0)
	moved, err := tv.Add(30)
	if err != nil {
		t.Fatalf("Add(30): %v", err)
	}
	y, m, d, h := moved.YMD()
	if y != 1 || m != 1 || d != 2 || h != 6 {
		t.Fatalf("epoch+30h: got %d/%d/%d %d, want 1/1/2 6", y, m, d, h)
	}
	// Original untouched (value semantics).
	if tv.Hours() != 0 {
		t.Fatalf("Add mutated receiver: %d", tv.Hours())
	}
}

func TestAddNegative(t *testing.T) {
	tv := mustFromYMD(t, 1, 1, 2, 0)
	moved, err := tv.Add(-25)
	if err != nil {
		t.Fatal(err)
	}
	y, m, d, h := moved.YMD()
	if y != 1 || m != 1 || d != 1 || h != 23 {
		t.Fatalf("day2-25h: got %d/%d/%d %d, want 1/1/1 23", y, m, d, h)
	}
}

func TestAddOverflow(t *testing.T) {
	tv := FromHours(math.MaxInt64)
	if _, err := tv.Add(1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("max+1: got %v, want ErrOverflow", err)
	}
	tv = FromHours(math.MinInt64)
	if _, err := tv.Add(-1); !errors.Is(err, ErrOverflow) {
		t.Fatalf("min-1: got %v, want ErrOverflow", err)
	}
}

func TestDiffAntisymmetric(t *testing.T) {
	a := mustFromYMD(t, 2, 6, 15, 18)
	b := mustFromYMD(t, 1, 1, 1, 0)
	if a.Diff(b) != -(b.Diff(a)) {
		t.Fatalf("Diff not antisymmetric: %d vs %d", a.Diff(b), b.Diff(a))
	}
	if a.Diff(a) != 0 {
		t.Fatalf("Diff(self): got %d, want 0", a.Diff(a))
	}
	if a.Diff(b) <= 0 {
		t.Fatalf("later.Diff(earlier) should be positive, got %d", a.Diff(b))
	}
}

func TestTotalOrder(t *testing.T) {
	early := FromHours(-5)
	late := FromHours(10)
	if !early.Before(late) || late.Before(early) {
		t.Fatal("Before broken")
	}
	if !late.After(early) || early.After(late) {
		t.Fatal("After broken")
	}
	if !early.Equal(FromHours(-5)) {
		t.Fatal("Equal broken")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Fatal("Compare broken")
	}
}

func TestAccessors(t *testing.T) {
	tv := mustFromYMD(t, 2, 6, 15, 18)
	if tv.Year() != 2 || tv.Month() != 6 || tv.Day() != 15 || tv.Hour() != 18 {
		t.Fatalf("accessors: got %d/%d/%d %d", tv.Year(), tv.Month(), tv.Day(), tv.Hour())
	}
}

func TestString(t *testing.T) {
	tv := mustFromYMD(t, 1, 1, 2, 6)
	if got := tv.String(); got != "0001-01-02 06:00" {
		t.Fatalf("String: got %q", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tv := FromHours(-42)
	data, err := json.Marshal(tv)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "-42" {
		t.Fatalf("Marshal: got %s, want -42", data)
	}
	var back TimeValue
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(tv) {
		t.Fatalf("round trip: got %d, want %d", back.Hours(), tv.Hours())
	}
}

func TestDaysInMonth(t *testing.T) {
	if DaysInMonth(1, 2) != 28 || DaysInMonth(4, 2) != 29 {
		t.Fatal("February lengths wrong")
	}
	if DaysInMonth(1, 4) != 30 || DaysInMonth(1, 1) != 31 {
		t.Fatal("month lengths wrong")
	}
}

func TestIsLeapYear(t *testing.T) {
	leaps := map[int]bool{4: true, 100: false, 400: true, 1900: false, 2000: true, 0: true, -4: true, 1: false}
	for y, want := range leaps {
		if IsLeapYear(y) != want {
			t.Fatalf("IsLeapYear(%d): want %v", y, want)
		}
	}
}
