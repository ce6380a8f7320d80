package main

import (
	"fmt"
	"log"
	"os"

	"github.com/codegangsta/cli"
	"github.com/kevin-cantwell/recolor"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "recolor"
	app.Usage = "Recolors, crops and antialiases an animated gif."
	app.UsageText = "recolor [options] [input.gif [output.gif]]"
	app.Author = "Kevin Cantwell"
	app.Email = "kevin.cantwell@gmail.com"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "preview,p",
			Usage: "Draws the first output frame to the terminal as braille before encoding.",
		},
	}
	app.Action = func(c *cli.Context) {
		input, output := recolor.DefaultInput, recolor.DefaultOutput
		if arg := c.Args().Get(0); arg != "" {
			input = arg
		}
		if arg := c.Args().Get(1); arg != "" {
			output = arg
		}

		opts := []recolor.Option{
			recolor.WithLogger(log.New(os.Stderr, "", 0)),
		}
		if c.Bool("preview") {
			opts = append(opts, recolor.WithPreview(os.Stdout))
		}

		if err := recolor.NewPipeline(opts...).Run(input, output); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
