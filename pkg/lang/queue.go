package lang

// Queue collects translation keys per namespace. Namespaces keep the
// order in which they were first seen and keys are unique per namespace.
type Queue struct {
	order []string
	keys  map[string][]string
	seen  map[string]map[string]struct{}
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{
		keys: make(map[string][]string),
		seen: make(map[string]map[string]struct{}),
	}
}

// Touch registers a namespace without adding keys to it
func (q *Queue) Touch(namespace string) {
	if _, ok := q.seen[namespace]; ok {
		return
	}
	q.order = append(q.order, namespace)
	q.seen[namespace] = make(map[string]struct{})
}

// Add queues a key for a namespace. Repeated keys are ignored.
func (q *Queue) Add(namespace, key string) {
	q.Touch(namespace)
	if _, dup := q.seen[namespace][key]; dup {
		return
	}
	q.seen[namespace][key] = struct{}{}
	q.keys[namespace] = append(q.keys[namespace], key)
}

// Namespaces returns namespaces in first-seen order
func (q *Queue) Namespaces() []string {
	out := make([]string, len(q.order))
	copy(out, q.order)
	return out
}

// Keys returns the keys queued for a namespace in insertion order
func (q *Queue) Keys(namespace string) []string {
	keys := q.keys[namespace]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Len returns the total number of queued keys
func (q *Queue) Len() int {
	n := 0
	for _, keys := range q.keys {
		n += len(keys)
	}
	return n
}
