// Package widgets holds the widget constructors: the per-call pipelines
// that gate, normalize, identify, register, validate, and emit a widget
// during one script run. Each constructor is a pure function of its config
// and the run context; the returned value is the widget's application
// value for this run.
package widgets
