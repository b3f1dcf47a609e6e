// Package mocks provides hand-rolled test doubles for the store and
// service interfaces. Each mock carries optional Fn fields that override
// its default in-memory behavior, plus call tracking where tests need it.
package mocks
