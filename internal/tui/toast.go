package tui

import "time"

// toastLifetime is how long a selection toast stays on screen.
const toastLifetime = 2 * time.Second

// Toast is a short-lived notice of a reported selection.
type Toast struct {
	Value string
	At    time.Time
}

// ToastQueue keeps the most recent toasts, oldest first.
type ToastQueue struct {
	items  []Toast
	limit  int
	pushed int
}

func NewToastQueue(limit int) *ToastQueue {
	return &ToastQueue{limit: limit}
}

// Push appends a toast, dropping the oldest once the limit is reached.
func (queue *ToastQueue) Push(toast Toast) {
	queue.pushed++
	queue.items = append(queue.items, toast)
	if queue.limit > 0 && len(queue.items) > queue.limit {
		queue.items = queue.items[len(queue.items)-queue.limit:]
	}
}

// Expire drops every toast that has been shown for toastLifetime by now and
// returns how many were dropped. A timer left over from a toast that was
// already pushed out of the queue expires nothing.
func (queue *ToastQueue) Expire(now time.Time) int {
	n := 0
	for n < len(queue.items) && !now.Before(queue.items[n].At.Add(toastLifetime)) {
		n++
	}
	queue.items = queue.items[n:]
	return n
}

func (queue *ToastQueue) Items() []Toast {
	return append([]Toast(nil), queue.items...)
}

func (queue *ToastQueue) Len() int {
	return len(queue.items)
}

// Pushed counts every toast ever pushed, including dropped ones.
func (queue *ToastQueue) Pushed() int {
	return queue.pushed
}
