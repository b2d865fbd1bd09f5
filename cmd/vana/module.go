package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/vana/debugs"
	"github.com/reusee/vana/pipelines"
)

type Module struct {
	dscope.Module
	Pipelines pipelines.Module
	Debugs    debugs.Module
}
