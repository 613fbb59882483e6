// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package presenter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apperrors "github.com/NVIDIA/swapi-demo/pkg/errors"
	"github.com/NVIDIA/swapi-demo/pkg/serializer"
	"github.com/NVIDIA/swapi-demo/pkg/swapi"
)

// Option is a functional option for configuring Presenter instances.
type Option func(*Presenter)

// WithOutput sets the destination for rendered blocks. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(p *Presenter) {
		p.out = w
	}
}

// WithFormat sets the rendering format. Unknown formats fall back to table.
func WithFormat(f serializer.Format) Option {
	return func(p *Presenter) {
		p.format = f
	}
}

// Presenter fetches resources through a swapi.Client and renders them.
//
// Every block is rendered into memory first and written with a single call,
// so concurrent cycles never interleave within a block.
type Presenter struct {
	client  *swapi.Client
	out     io.Writer
	format  serializer.Format
	printer *message.Printer

	mu sync.Mutex
}

// New creates a Presenter backed by client.
func New(client *swapi.Client, opts ...Option) *Presenter {
	p := &Presenter{
		client:  client,
		out:     os.Stdout,
		format:  serializer.FormatTable,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.format.IsUnknown() {
		p.format = serializer.FormatTable
	}
	return p
}

// Format returns the rendering format in use.
func (p *Presenter) Format() serializer.Format {
	return p.format
}

// fetch loads endpoint as T and accounts its payload size.
func fetch[T any](ctx context.Context, p *Presenter, endpoint string) (T, error) {
	v, size, err := swapi.Resource[T](ctx, p.client, endpoint)
	if err != nil {
		return v, err
	}
	p.client.Stats().AddDataSize(size)
	return v, nil
}

// emit renders view in the configured format and writes it out. table is
// used for the human-readable format only.
func (p *Presenter) emit(ctx context.Context, view any, table func(w io.Writer)) error {
	var buf bytes.Buffer
	if p.format == serializer.FormatTable {
		tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
		table(tw)
		if err := tw.Flush(); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to render block", err)
		}
	} else if err := serializer.NewWriter(p.format, &buf).Serialize(ctx, view); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to serialize block", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := p.out.Write(buf.Bytes()); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write block", err)
	}
	return nil
}

// count renders a numeric API field with digit grouping, passing through
// values such as "unknown" untouched.
func (p *Presenter) count(s string) string {
	n, ok := swapi.ParseCount(s)
	if !ok {
		return s
	}
	return p.printer.Sprintf("%d", n)
}

// cost renders a cost in credits, or "unknown".
func (p *Presenter) cost(s string) string {
	n, ok := swapi.ParseCount(s)
	if !ok {
		return swapi.Unknown
	}
	return p.printer.Sprintf("%d credits", n)
}

func line(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s:\t%s\n", label, value)
}
