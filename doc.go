// Package plinth renders simple 2D shapes through GPU instancing and lets
// named style classes retint them at runtime.
//
// # Overview
//
// A frame is a list of shapes ([Circle], [Rectangle], [Triangle]). Each shape
// carries its own geometry, an explicit [Color], a [Transform] and an optional
// style class name. The render package groups shapes by kind into instance
// batches and issues exactly one instanced draw per non-empty kind.
//
// Style classes live in a registry (package style). When a shape's class
// resolves to a color, that color replaces the shape's explicit color before
// the shape is packed into its batch. A watcher can keep the registry in sync
// with an external raw-style source.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/plinth"
//	    "github.com/gogpu/plinth/render"
//	    "github.com/gogpu/plinth/style"
//	)
//
//	reg := style.NewRegistry()
//	reg.Upsert(style.Class{Name: "accent", Color: plinth.Ptr(plinth.RGB(255, 107, 53))})
//
//	session, err := render.NewSession(device, surface, reg)
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	c := plinth.NewCircle(plinth.V2(0, 0), 0.25).WithStyleClass("accent")
//	err = session.RenderFrame([]plinth.Shape{&c}, plinth.Black)
//
// # Architecture
//
// The module is organized into:
//   - plinth: value types (Color, Vec2, Transform, shapes) and the logger
//   - style: class registry, color parsing, change watcher
//   - style/memsource: in-memory raw-style source
//   - gpucore: the GPU capability surface the renderer depends on
//   - backend/native: gpucore over gogpu/wgpu HAL
//   - render: instance batches, shaders and the frame session
//
// # Logging
//
// plinth is silent by default. See [SetLogger].
package plinth
