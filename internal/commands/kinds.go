package commands

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/assetgen/pkg/cobrax/topics"
	"github.com/arthur-debert/assetgen/pkg/kinds"
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/ui"
)

// kindFile is one file of a kind description
type kindFile struct {
	Path     string `json:"path"`
	Template string `json:"template"`
	Name     string `json:"name,omitempty"`
}

// kindDoc describes a kind for display
type kindDoc struct {
	Kind        string     `json:"kind"`
	Description string     `json:"description"`
	Files       []kindFile `json:"files"`
	LangKey     string     `json:"langKey"`
	ItemModel   *kindFile  `json:"itemModel,omitempty"`
	Excludes    string     `json:"excludes,omitempty"`
}

func newKindsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: MsgKindsShort,
		Long:  MsgKindsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(opts.format)
			if err != nil {
				return err
			}
			if format == ui.FormatAuto {
				format = ui.FormatTerminal
			}

			docs := describeKinds(kinds.Default())
			out := cmd.OutOrStdout()

			switch format {
			case ui.FormatJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(docs)
			case ui.FormatText:
				_, err := fmt.Fprint(out, topics.NewPlainGlamourRenderer().Render(kindsMarkdown(docs), ".md"))
				return err
			default:
				_, err := fmt.Fprint(out, topics.NewGlamourRenderer().Render(kindsMarkdown(docs), ".md"))
				return err
			}
		},
	}
}

// describeKinds lists the rules of a table with placeholder paths
func describeKinds(table *kinds.Table) []kindDoc {
	rules := table.Rules()
	docs := make([]kindDoc, 0, len(rules))

	for _, rule := range rules {
		doc := kindDoc{
			Kind:        rule.Kind,
			Description: rule.Description,
			LangKey:     rule.LangKey("<namespace>", "<name>"),
		}
		for _, out := range rule.Outputs {
			doc.Files = append(doc.Files, kindFile{
				Path:     path.Join(out.Dir, "<name>"+out.Suffix+paths.JSONExt),
				Template: out.Template,
			})
		}
		if item := rule.ItemModel; item != nil {
			doc.ItemModel = &kindFile{
				Path:     path.Join(paths.ItemModelsDir, "<name>"+item.FileSuffix+paths.JSONExt),
				Template: item.Template,
				Name:     "<name>" + item.NameSuffix,
			}
		}
		if rule.ExcludesBlockItem {
			doc.Excludes = kinds.BlockItem
		}
		docs = append(docs, doc)
	}
	return docs
}

func kindsMarkdown(docs []kindDoc) string {
	var b strings.Builder

	b.WriteString("# Kinds\n\n")
	b.WriteString("| Kind | Files | Lang key | With blockitem |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, doc := range docs {
		withItem := "-"
		switch {
		case doc.ItemModel != nil:
			withItem = "`" + doc.ItemModel.Path + "`"
		case doc.Excludes != "":
			withItem = "not allowed"
		}
		fmt.Fprintf(&b, "| `%s` | %d | `%s` | %s |\n", doc.Kind, len(doc.Files), doc.LangKey, withItem)
	}
	fmt.Fprintf(&b, "| `%s` | 0 | - | modifier |\n", kinds.BlockItem)

	for _, doc := range docs {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n\n", doc.Kind, doc.Description)
		for _, f := range doc.Files {
			fmt.Fprintf(&b, "- `%s` from `%s`\n", f.Path, f.Template)
		}
		if doc.ItemModel != nil {
			fmt.Fprintf(&b, "- with blockitem: `%s` from `%s`, rendered as `%s`\n",
				doc.ItemModel.Path, doc.ItemModel.Template, doc.ItemModel.Name)
		}
	}
	return b.String()
}
