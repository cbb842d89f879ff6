package main

import (
	"context"

	"github.com/magefile/mage/sh"
)

var toolsDev = []string{
	"github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
	"github.com/vektra/mockery/v2@v2.38.0",
	"mvdan.cc/gofumpt@latest",
}

func InstallToolsDev(ctx context.Context) error {
	for _, t := range toolsDev {
		if err := sh.RunV("go", "install", t); err != nil {
			return err
		}
	}
	return nil
}
