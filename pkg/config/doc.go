// Package config loads the edge's process-wide configuration once at
// start-up.
//
// Each component declares a struct with `env` tags (and `yaml` tags when
// the value may also come from the routing policy file). Load fills it
// from the environment, reading a .env file first when present, and
// caches the result per type so later calls are free. LoadFile overlays a
// YAML document on an already loaded struct; values present in the file
// win over the environment.
//
//	var rc hostrouter.Config
//	if err := config.Load(&rc); err != nil {
//		return err
//	}
//	if path := os.Getenv("EDGE_POLICY_FILE"); path != "" {
//		if err := config.LoadFile(path, &rc); err != nil {
//			return err
//		}
//	}
package config
