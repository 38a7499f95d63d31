// Package document reads and writes mindmap documents.
//
// A document is a tree of nodes plus a mindmap-wide style, stored as JSON,
// YAML or TOML. Style fields are optional everywhere: a node's style is the
// document's node style with the node's own fields laid over it, and the
// document's node style is [mindmap.DefaultNodeStyle] with the document's
// fields laid over it.
//
//	title: Launch
//	style:
//	  padding_horizontal: 40
//	  node:
//	    font_size: 14
//	root:
//	  text: Launch
//	  children:
//	    - text: Marketing
//	    - text: Engineering
//	      style:
//	        text_wrapping: false
//
// [Load] decodes and resolves in one step; [Decode] followed by
// [Document.Mindmap] does the same in two. [Encode] writes a mindmap back out.
package document
