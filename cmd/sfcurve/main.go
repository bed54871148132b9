package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/datatrails/go-datatrails-common/logger"
)

type Context struct {
	context.Context
	kctx *kong.Context
	log  logger.Logger
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("sfcurve"),
		kong.Description("inspect Z-order, Gray and double Gray traversals of a square grid"))

	logger.New(CLI.LogLevel)
	defer logger.OnExit()

	// Call the Run() method of the selected parsed command.
	err := ctx.Run(&Context{
		kctx:    ctx,
		Context: context.TODO(),
		log:     logger.Sugar.WithServiceName("sfcurve"),
	})
	ctx.FatalIfErrorf(err)
}
