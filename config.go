package vec

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option[Item any] = func(*config[Item])

// WithLen starts the vector with the given number of zero-valued items.
func WithLen[Item any](length int) Option[Item] {
	if length < 0 {
		panic("length can't be negative")
	}
	return func(c *config[Item]) {
		c.length = length
	}
}

// WithCapacity preallocates room for the given number of items without
// changing the vector's length.
func WithCapacity[Item any](capacity int) Option[Item] {
	if capacity < 0 {
		panic("capacity can't be negative")
	}
	return func(c *config[Item]) {
		c.capacity = capacity
	}
}

// WithFill sets the item the initial length is filled with. It has no
// visible effect without [WithLen].
func WithFill[Item any](item Item) Option[Item] {
	return func(c *config[Item]) {
		c.fill = item
		c.hasFill = true
	}
}

// WithPrometheus makes the vector record its operations as Prometheus
// metrics. If registerer is nil, the metrics are collected but not
// registered.
func WithPrometheus[Item any](
	registerer prometheus.Registerer,
	namespace, subsystem string,
) Option[Item] {
	return func(c *config[Item]) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config[Item any] struct {
	length   int
	capacity int
	fill     Item
	hasFill  bool
	metrics  *metrics
}

func newConfig[Item any](options ...Option[Item]) *config[Item] {
	var c config[Item]
	for _, option := range options {
		option(&c)
	}
	return &c
}
