package tui

import (
	"testing"
	"time"
)

func TestToastQueueKeepsNewest(t *testing.T) {
	queue := NewToastQueue(2)
	queue.Push(Toast{Value: "Day"})
	queue.Push(Toast{Value: "Week"})
	queue.Push(Toast{Value: "Month"})

	if queue.Pushed() != 3 {
		t.Fatalf("expected 3 pushes, got %d", queue.Pushed())
	}
	items := queue.Items()
	if len(items) != 2 || items[0].Value != "Week" || items[1].Value != "Month" {
		t.Fatalf("expected [Week Month], got %+v", items)
	}
}

func TestToastQueueExpiresByAge(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	at := func(ms int) time.Time {
		return start.Add(time.Duration(ms) * time.Millisecond)
	}

	queue := NewToastQueue(3)
	for i, v := range []string{"Day", "Week", "Month", "Year"} {
		queue.Push(Toast{Value: v, At: at(i * 500)})
	}

	// the timer of the dropped "Day" toast fires first
	if n := queue.Expire(at(2000)); n != 0 {
		t.Fatalf("expected nothing to expire, dropped %d", n)
	}
	if queue.Len() != 3 {
		t.Fatalf("expected 3 toasts, got %d", queue.Len())
	}

	if n := queue.Expire(at(2500)); n != 1 {
		t.Fatalf("expected 1 toast to expire, dropped %d", n)
	}
	if items := queue.Items(); items[0].Value != "Month" {
		t.Fatalf("expected 'Month' to be oldest, got %+v", items)
	}

	if n := queue.Expire(at(10000)); n != 2 || queue.Len() != 0 {
		t.Fatalf("expected the rest to expire, dropped %d, left %d", n, queue.Len())
	}
}
