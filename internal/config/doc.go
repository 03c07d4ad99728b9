// Package config loads defkit.json, the optional configuration file read by
// the defkit command.
//
// # Configuration File Structure
//
//	{
//	  "render": {
//	    "pretty": true,
//	    "indent": "  "
//	  },
//	  "log": {
//	    "level": "info"
//	  },
//	  "metrics": {
//	    "namespace": "defkit"
//	  }
//	}
//
// A missing file is not an error; defaults are used instead.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Pretty:", cfg.Render.Pretty)
package config
