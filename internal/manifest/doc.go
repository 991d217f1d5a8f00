// Package manifest handles parsing and validation of TALON.md manifests.
//
// A manifest is a YAML frontmatter block between two "---" lines followed by
// free-form Markdown documentation:
//
//	---
//	name: github
//	version: 1.0.0
//	description: GitHub integration for issues, PRs, and workflows
//	tags: [github, devtools]
//	commands:
//	  - name: open-issue
//	    description: Open a new issue
//	    args:
//	      - name: title
//	        type: string
//	        required: true
//	---
//
//	# GitHub Talon
//
// Only the frontmatter is structural. The body is documentation for humans
// and models and is never retained by Parse.
package manifest
