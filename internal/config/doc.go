// Package config provides configuration parsing for htmlnode projects.
//
// The configuration is stored in htmlnode.json at the project root. Every
// field is optional; missing values take the defaults from New.
//
// # Configuration File Structure
//
//	{
//	  "output": "dist/index.html",
//	  "trailingNewline": true,
//	  "log": {
//	    "level": "debug",
//	    "format": "json"
//	  },
//	  "metrics": {
//	    "file": "metrics/htmlnode.prom",
//	    "namespace": "htmlnode"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Output:", cfg.OutputPath())
package config
