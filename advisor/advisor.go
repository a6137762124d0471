// Package advisor runs the interactive AI session behind `rfx assist`.
//
// A single Gemini chat is grounded on a rendered report of the user's
// wallet and projections, so answers stay anchored on the actual numbers
// instead of the model's priors.
package advisor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

const systemInstruction = `
Você é um consultor de renda fixa brasileiro. O usuário mantém uma carteira
de instrumentos (CDB, LCI/LCA, Tesouro) e recebe abaixo um relatório com as
projeções e comparações calculadas para essa carteira.

Responda sempre em português, curto e direto, apoiado nos números do
relatório. A tabela regressiva do IR (22,5% até 180 dias, 20% até 360,
17,5% até 720, 15% acima) já está aplicada nos valores líquidos: não a
reaplique. Se a pergunta exigir dados que o relatório não contém, diga isso
explicitamente em vez de inventar.
`

// Advisor holds the chat session with the consultant.
type Advisor struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat

	// report is the rendered markdown the chat is grounded on.
	report string
}

// New creates an Advisor grounded on the given report, reading user input
// from r and writing responses to w.
func New(w io.Writer, r io.Reader, report string) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		report: report,
	}
}

// Start opens the chat and feeds it the grounding report.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	grounding := "Relatório da carteira do usuário:\n\n" + a.report
	if _, err := a.chat.Send(ctx, &genai.Part{Text: grounding}); err != nil {
		return fmt.Errorf("cannot ground the consultant: %w", err)
	}
	return nil
}

// Ask sends one question and returns the consultant's answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the consultant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Any prompts given are consumed
// before reading from the user.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Consultor rfx. Digite 'sair' para encerrar.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "sair" || input == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
