//go:build js && wasm

// Package main provides the browser front-end for esrdec.
// Each of the three text inputs (esr, midr, smccc) forwards its value to
// the matching decoder on input events and renders the report into the
// page; the value is mirrored into the URL fragment for shareable links.
package main

import (
	"net/url"
	"strings"
	"syscall/js"

	"github.com/sarchlab/esrdec/esr"
	"github.com/sarchlab/esrdec/field"
	"github.com/sarchlab/esrdec/midr"
	"github.com/sarchlab/esrdec/regval"
	"github.com/sarchlab/esrdec/render"
	"github.com/sarchlab/esrdec/smccc"
)

type registerInput struct {
	id     string
	name   string
	width  uint
	decode func(regval.Value) []field.Info
}

var inputs = []registerInput{
	{"esr", "ESR", esr.Width, esr.DecodeValue},
	{"midr", "MIDR", midr.Width, midr.DecodeValue},
	{"smccc", "SMCCC", smccc.Width, smccc.DecodeValue},
}

func main() {
	document := js.Global().Get("document")

	for _, in := range inputs {
		element := document.Call("getElementById", in.id)
		if element.IsNull() {
			continue
		}

		in := in
		element.Call("addEventListener", "input", js.FuncOf(func(js.Value, []js.Value) any {
			text := element.Get("value").String()
			update(document, in, text)
			setFragment(in.id, text)
			return nil
		}))
	}

	populateFromFragment(document)

	// Keep the Go runtime alive for the event handlers.
	select {}
}

// update decodes the input text and rewrites the matching output element.
// Empty or invalid input leaves the previous report in place, matching the
// decoder's policy of only reacting to decodable values.
func update(document js.Value, in registerInput, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	out := document.Call("getElementById", in.id+"_out")
	if out.IsNull() {
		return
	}

	v, err := regval.Parse(text, in.width)
	if err != nil {
		return
	}
	out.Set("textContent", render.Report(in.name, v, in.decode(v), false))
}

// setFragment mirrors the current input into the URL fragment, e.g.
// "#esr=0x96000050".
func setFragment(id, text string) {
	location := js.Global().Get("location")
	location.Set("hash", id+"="+url.QueryEscape(strings.TrimSpace(text)))
}

// populateFromFragment pre-populates an input from a non-empty URL
// fragment on page load and triggers the initial decode.
func populateFromFragment(document js.Value) {
	hash := js.Global().Get("location").Get("hash").String()
	hash = strings.TrimPrefix(hash, "#")

	id, encoded, ok := strings.Cut(hash, "=")
	if !ok {
		return
	}
	text, err := url.QueryUnescape(encoded)
	if err != nil {
		return
	}

	for _, in := range inputs {
		if in.id != id {
			continue
		}
		element := document.Call("getElementById", in.id)
		if element.IsNull() {
			return
		}
		element.Set("value", text)
		update(document, in, text)
		return
	}
}
