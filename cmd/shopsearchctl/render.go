package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/kailas-cloud/shopsearch/internal/domain/product"
	"github.com/kailas-cloud/shopsearch/internal/domain/search/result"
	searchuc "github.com/kailas-cloud/shopsearch/internal/usecase/search"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")).Padding(0, 1)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderSearch(w io.Writer, query string, out searchuc.Outcome) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%q: %d match(es), showing %d", query, out.TotalResults, len(out.Results))))
	if len(out.Results) == 0 {
		fmt.Fprintln(w, dimStyle.Render("No products matched."))
		return
	}
	for i := range out.Results {
		fmt.Fprintln(w, cardStyle.Render(resultCard(i+1, &out.Results[i])))
	}
}

func resultCard(rank int, r *result.Result) string {
	p := r.Product()

	badges := make([]string, 0, len(r.MatchedTerms()))
	for _, term := range r.MatchedTerms() {
		badges = append(badges, badgeStyle.Render(term))
	}

	title := fmt.Sprintf("#%d %s", rank, headerStyle.Render(p.Title()))
	score := scoreStyle.Render("score " + strconv.Itoa(r.Score()))
	return lipgloss.JoinVertical(lipgloss.Left,
		title+"  "+score,
		productLine(&p),
		lipgloss.JoinHorizontal(lipgloss.Top, badges...),
	)
}

func renderProducts(w io.Writer, products []product.Product) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%d product(s)", len(products))))
	for i := range products {
		fmt.Fprintf(w, "%s  %s\n", headerStyle.Render(products[i].Title()), productLine(&products[i]))
	}
}

func productLine(p *product.Product) string {
	return dimStyle.Render(fmt.Sprintf("id %s | %s | $%s | %s★",
		p.ID(),
		p.Category(),
		strconv.FormatFloat(p.Price(), 'f', 2, 64),
		strconv.FormatFloat(p.Rating(), 'f', -1, 64),
	))
}

func writeJSON(w io.Writer, out searchuc.Outcome) error {
	results := out.Results
	if results == nil {
		results = []result.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"results":      results,
		"totalResults": out.TotalResults,
	})
}
