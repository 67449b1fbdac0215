// Package template loads LibRML document templates from a directory and
// renders them into documents.
//
// A template is a text/template file (default extension ".tmpl") whose
// output is the JSON form of a document. Next to it lives a JSONC sidecar
// "<name>.meta.json" naming the template id and describing its variables:
//
//	{
//	  "template": "embargo",
//	  "readablename": "Embargoed download",
//	  "description": "Download allowed after the embargo ends",
//	  "variables": [
//	    {"name": "fromdate", "datatype": "date", "source": "catalogue"}, // ISO date
//	  ],
//	}
//
// Variables are discovered from the template itself; the sidecar only adds
// descriptions. A template without a valid sidecar is skipped on load.
//
// Usage:
//
//	manager := template.NewManager(cfg.Templates, logger, collector)
//	if err := manager.Load(); err != nil {
//		return err
//	}
//	doc, err := manager.Render("embargo", "item-1", "slub", map[string]any{
//		"fromdate": "2030-01-01",
//	})
//
// Watcher reloads the manager when files change and Scheduler rescans the
// directory on a cron schedule.
package template
