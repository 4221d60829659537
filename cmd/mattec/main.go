package main

import (
	"os"

	"github.com/geekysuavo/mattec/internal/driver"
	"github.com/mna/mainer"
)

func main() {
	os.Exit(int(driver.Main(os.Args, mainer.CurrentStdio())))
}
