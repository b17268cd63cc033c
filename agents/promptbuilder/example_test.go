/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"fmt"
	"log"

	"chainguard.dev/jawaher/agents/promptbuilder"
)

func ExamplePrompt_BindText() {
	p := promptbuilder.MustNewPrompt(`Proverb: {{proverb}}
Answer:`)

	p, err := p.BindText("proverb", "الصبر مفتاح الفرج")
	if err != nil {
		log.Fatal(err)
	}
	out, err := p.Build()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out)
	// Output: Proverb: الصبر مفتاح الفرج
	// Answer:
}

func ExamplePrompt_Placeholders() {
	p := promptbuilder.MustNewPrompt(`{{instructions}} {{data}} {{data}}`)
	fmt.Println(p.Placeholders())
	// Output: [data instructions]
}
