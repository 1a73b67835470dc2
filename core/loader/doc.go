// Package loader provides the feature loading system of the HTTP server.
//
// Each feature implements the Feature interface; the Manager registers
// features and loads the enabled ones onto a fiber router:
//
//	mgr := loader.NewManager()
//	mgr.Register(uniques.NewFeature(svc, logg))
//	loaded, err := mgr.LoadAll(app)
package loader
