/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder builds prompts from immutable placeholder templates.

Templates are developer literals containing {{name}} placeholders. A template
is tokenized once, when it is created, into literal text and placeholder
segments; binding never re-scans substituted text, so a dataset field that
happens to contain "{{x}}" is emitted as-is rather than expanded.

	var mcq = promptbuilder.MustNewPrompt(`Proverb: {{proverb}}
	Options: A. {{a}}
	B. {{b}}
	Answer:`)

	p, err := mcq.BindText("proverb", doc.Proverb)
	...
	prompt, err := p.Build()

# Bindings

  - BindLiteral: a developer-controlled constant. Only untyped string
    constants convert to the parameter type, so runtime strings cannot slip
    through it by accident.
  - BindText: a runtime string inserted verbatim. Benchmark prompts embed
    dataset fields this way: the model must see the proverb exactly as
    written, without quoting or escaping.
  - BindJSON, BindYAML: structured data, marshaled.

Each Bind method returns a new Prompt; the receiver is never modified, so
package-level templates are safe to share. Every Bind method has a Must
variant that panics.

Build fails when a placeholder is still unbound. Binding a name that is not
in the template, or binding one twice, is an error.

# Binder

Documents that know how to fill a template implement Binder.
*/
package promptbuilder
