package main

import (
	"flag"
	"fmt"
	"os"

	"deskscene/internal/engine"
	"deskscene/internal/renderer"
	"deskscene/internal/scene"
)

func main() {
	scenePath := flag.String("scene", "", "scene description file (YAML); built-in desk scene when empty")
	width := flag.Int("width", 1024, "window width")
	height := flag.Int("height", 768, "window height")
	wireframe := flag.Bool("wireframe", false, "render as wireframe")
	flag.Parse()

	var scn *scene.Scene
	if *scenePath != "" {
		loaded, err := scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		scn = loaded
	} else {
		scn = scene.Default()
	}

	renderer.Debug = *wireframe

	viewer := engine.NewViewer(scn)
	viewer.Width = int32(*width)
	viewer.Height = int32(*height)

	if err := viewer.Run(100, 100); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
