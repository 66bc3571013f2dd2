// Command islandgen generates a terrain grid, a floating island or an
// archipelago, prints mesh statistics and optionally streams the result to
// browsers over a websocket.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/src-d/go-billy.v4/osfs"

	"islandgen/config"
	"islandgen/scene"
	"islandgen/server"
)

func main() {
	var (
		kind        = flag.String("kind", scene.KindRadial, "scene to generate: grid, radial or archipelago")
		normals     = flag.Bool("normals", false, "recalculate vertex normals")
		colors      = flag.Bool("colors", false, "color vertices by height")
		serve       = flag.Bool("serve", false, "serve meshes over websocket after generating")
		writeConfig = flag.String("write-config", "", "write the effective settings to this file and exit")
	)

	// Paths resolve against the working directory.
	fs := osfs.New("")
	settings, err := config.Parse(fs, flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	if *writeConfig != "" {
		if err := config.Save(fs, *writeConfig, settings); err != nil {
			log.Fatalf("Failed to write settings: %v", err)
		}
		log.Printf("Wrote settings to %s", *writeConfig)
		return
	}

	builder, err := settings.Builder()
	if err != nil {
		log.Fatalf("Failed to create builder: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	res, err := scene.Build(ctx, settings, builder, scene.Request{Kind: *kind, Normals: *normals, Colors: *colors})
	if err != nil {
		log.Fatalf("Failed to generate: %v", err)
	}
	lo, hi := res.Meshes.HeightRange()
	log.Printf("Generated %s with %s noise (seed %d) in %v", res.Kind, noiseName(settings.Noise.Kind), res.Seed, time.Since(start))
	log.Printf("Vertices: %d, triangles: %d", len(res.Meshes.Vertices), res.Meshes.TriangleCount())
	log.Printf("Height range: %.2f to %.2f", lo, hi)

	if !*serve {
		return
	}

	srv, err := server.New(settings, builder)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	if err := srv.ListenAndServe(ctx, settings.Server.Addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func noiseName(kind string) string {
	if kind == "" {
		return "perlin"
	}
	return kind
}
