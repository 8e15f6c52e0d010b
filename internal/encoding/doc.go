// Package encoding holds the auxiliary payload codecs of geometry sets.
package encoding
