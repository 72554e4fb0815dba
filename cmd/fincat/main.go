// Package main provides the entry point for the fincat CLI application.
package main

import (
	"fjacquet/fincat/cmd/category"
	"fjacquet/fincat/cmd/classify"
	"fjacquet/fincat/cmd/learn"
	"fjacquet/fincat/cmd/report"
	"fjacquet/fincat/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
	root.Cmd.AddCommand(report.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		root.Log.Fatal(err)
	}
}
