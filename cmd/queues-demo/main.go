// Command queues-demo walks through the typical usage of each container
// variant: fifo, buffer, circular and circular-default. Pass one of those
// names as an argument to run a single walkthrough; with no argument every
// walkthrough runs.
package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-queues/pkg/queues"
)

func main() {
	log := zap.Must(zap.NewDevelopment())
	defer func() { _ = log.Sync() }()

	demos := []struct {
		name string
		run  func(*zap.Logger)
	}{
		{"fifo", demoFIFO},
		{"buffer", demoBuffer},
		{"circular", demoCircular},
		{"circular-default", demoCircularDefault},
	}

	var which string
	if len(os.Args) > 1 {
		which = os.Args[1]
	}

	ran := false
	for _, d := range demos {
		if which == "" || which == d.name {
			d.run(log.Named(d.name))
			ran = true
		}
	}
	if !ran {
		log.Fatal("unknown demo", zap.String("name", which))
	}
}

// add runs q.Add and logs the outcome.
func add[T any](log *zap.Logger, q queues.Queue[T], val T) {
	evicted, wasEvicted, err := q.Add(val)
	switch {
	case err != nil:
		log.Warn("add rejected", zap.Any("value", val), zap.Error(err))
	case wasEvicted:
		log.Info("add evicted oldest", zap.Any("value", val), zap.Any("evicted", evicted))
	default:
		log.Info("add", zap.Any("value", val))
	}
}

// remove runs q.Remove and logs the outcome.
func remove[T any](log *zap.Logger, q queues.Queue[T]) {
	val, err := q.Remove()
	if err != nil {
		log.Warn("remove failed", zap.Error(err))
		return
	}
	log.Info("remove", zap.Any("value", val))
}

// peek runs q.Peek and logs the outcome.
func peek[T any](log *zap.Logger, q queues.Queue[T]) {
	val, err := q.Peek()
	if err != nil {
		log.Warn("peek failed", zap.Error(err))
		return
	}
	log.Info("peek", zap.Any("value", val))
}

func demoFIFO(log *zap.Logger) {
	q := queues.NewFIFO[int]()

	add(log, q, 1)
	add(log, q, -2)
	add(log, q, 3)
	log.Info("size", zap.Int("size", q.Size()))

	remove(log, q)
	log.Info("size", zap.Int("size", q.Size()))

	peek(log, q)
	log.Info("size", zap.Int("size", q.Size()))

	remove(log, q)
	remove(log, q)

	peek(log, q)   // fails: empty
	remove(log, q) // fails: empty
}

func demoBuffer(log *zap.Logger) {
	buf := queues.NewBuffer[int](3)

	add(log, buf, 1)
	add(log, buf, -2)
	add(log, buf, 3)
	add(log, buf, -4) // rejected: full
	log.Info("size", zap.Int("size", buf.Size()))

	remove(log, buf)
	log.Info("size", zap.Int("size", buf.Size()))

	peek(log, buf)

	remove(log, buf)
	remove(log, buf)

	peek(log, buf)   // fails: empty
	remove(log, buf) // fails: empty
}

func demoCircular(log *zap.Logger) {
	cbuf := queues.NewCircularBuffer[int](5)

	add(log, cbuf, 1)
	add(log, cbuf, -2)
	add(log, cbuf, 3)
	log.Info("size", zap.Int("size", cbuf.Size()))

	remove(log, cbuf)
	peek(log, cbuf)

	add(log, cbuf, -7)
	add(log, cbuf, 8)
	add(log, cbuf, -9)
	log.Info("size", zap.Int("size", cbuf.Size()))

	add(log, cbuf, 10) // evicts -2
	log.Info("size", zap.Int("size", cbuf.Size()))
}

func demoCircularDefault(log *zap.Logger) {
	cbuf := queues.NewCircularBufferWithDefault(3, -1)
	log.Info("size", zap.Int("size", cbuf.Size()))

	peek(log, cbuf)

	add(log, cbuf, 45) // evicts a default
	peek(log, cbuf)

	add(log, cbuf, 56)
	add(log, cbuf, 67)
	peek(log, cbuf) // 45: all defaults evicted

	remove(log, cbuf)
	remove(log, cbuf)
	remove(log, cbuf)
	log.Info("size", zap.Int("size", cbuf.Size()))

	peek(log, cbuf) // back to the default
}
