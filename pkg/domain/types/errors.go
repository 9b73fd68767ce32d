package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagNetwork marks failures to reach the listing or content endpoint
	ErrTagNetwork = goerr.NewTag("network")
	// ErrTagDecode marks API responses that do not match the expected record shape
	ErrTagDecode = goerr.NewTag("decode")
	// ErrTagParse marks documents without a usable container element
	ErrTagParse = goerr.NewTag("parse")
	// ErrTagIO marks local document read/write failures
	ErrTagIO = goerr.NewTag("io")
	// ErrTagConfig marks invalid configuration values
	ErrTagConfig = goerr.NewTag("config")
)
