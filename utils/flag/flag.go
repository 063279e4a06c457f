/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	PipelineService = "pipeline"
	APIServer       = "api_server"
)

var (
	ServiceName string
)

func init() {
	flag.StringVar(&ServiceName, "service", PipelineService, "'pipeline' or 'api_server'")
}
