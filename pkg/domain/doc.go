// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (scan records,
// body-composition profiles, partition-ratio inputs and predictions) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
