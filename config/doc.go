// Package config loads pathscope graph documents.
//
// A document is a YAML file carrying the adjacency matrix, node labels and
// the tunables of the surrounding tools:
//
//	graph:
//	  labels: [A, B, C]
//	  names:  [Alpha, Bravo, Charlie]
//	  matrix:
//	    - [0, 2, 0]
//	    - [2, 0, 5]
//	    - [0, 5, 0]
//	query:
//	  start: A
//	  end: C
//	animation:
//	  step: 0.08
//	  interval_ms: 50
//	layout:
//	  width: 1000
//	  height: 700
//	logging:
//	  level: info
//	  format: text
//
// Loader re-reads the file whenever it changes (fsnotify) and hands every
// valid new document to the registered OnChange callbacks.
package config
