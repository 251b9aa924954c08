package main

import (
	"fmt"

	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/cli"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	cli.Execute()
}
