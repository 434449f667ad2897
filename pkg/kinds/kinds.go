package kinds

import (
	"github.com/arthur-debert/assetgen/pkg/paths"
	"github.com/arthur-debert/assetgen/pkg/registry"
)

// Kind names
const (
	Block     = "block"
	Slab      = "slab"
	Stairs    = "stairs"
	Wall      = "wall"
	Item      = "item"
	BlockItem = "blockitem"
)

// Translation key categories
const (
	CategoryBlock = "block"
	CategoryItem  = "item"
)

// Template names
const (
	TemplateBlockBlockstate    = "block_blockstate"
	TemplateBlockModel         = "block_model"
	TemplateBlockItemModel     = "block_item_model"
	TemplateItemModel          = "item_model"
	TemplateSlabBlockstate     = "slab_blockstate"
	TemplateSlabModel          = "slab_model"
	TemplateSlabModelTop       = "slab_model_top"
	TemplateStairBlockstate    = "stair_blockstate"
	TemplateStairModel         = "stair_model"
	TemplateStairModelInner    = "stair_model_inner"
	TemplateStairModelOuter    = "stair_model_outer"
	TemplateWallBlockstate     = "wall_blockstate"
	TemplateWallModelInventory = "wall_model_inventory"
	TemplateWallModelPost      = "wall_model_post"
	TemplateWallModelSide      = "wall_model_side"
	TemplateWallModelSideTall  = "wall_model_side_tall"
)

// Output is one generated file: <dir>/<name><suffix>.json from template
type Output struct {
	Dir      string
	Suffix   string
	Template string
}

// ItemModel is the extra item model written for "blockitem" definitions.
// The file is named <name><FileSuffix>.json and the template sees
// <name><NameSuffix> as its {name}.
type ItemModel struct {
	FileSuffix string
	NameSuffix string
	Template   string
}

// Rule describes everything a kind generates
type Rule struct {
	Kind        string
	Description string
	Outputs     []Output

	// LangCategory and LangSuffix build <category>.<namespace>.<name><suffix>
	LangCategory string
	LangSuffix   string

	// ItemModel is nil when the kind ignores "blockitem"
	ItemModel *ItemModel

	// ExcludesBlockItem skips the kind entirely when "blockitem" is present
	ExcludesBlockItem bool
}

// LangKey returns the translation key for a namespace and name
func (r Rule) LangKey(namespace, name string) string {
	return r.LangCategory + "." + namespace + "." + name + r.LangSuffix
}

// Table is the kind -> rule dispatch table
type Table struct {
	rules *registry.Registry[Rule]
}

// NewTable creates an empty table
func NewTable() *Table {
	return &Table{rules: registry.New[Rule]()}
}

// Register adds a rule under its kind
func (t *Table) Register(rule Rule) error {
	return t.rules.Register(rule.Kind, rule)
}

// Lookup returns the rule of a kind
func (t *Table) Lookup(kind string) (Rule, bool) {
	return t.rules.Lookup(kind)
}

// Rules returns every rule in registration order
func (t *Table) Rules() []Rule {
	return t.rules.Values()
}

// IsModifier reports whether kind only changes the behaviour of other kinds
func IsModifier(kind string) bool {
	return kind == BlockItem
}

// Default returns the table of built-in kinds
func Default() *Table {
	t := NewTable()
	for _, rule := range builtinRules() {
		t.rules.MustRegister(rule.Kind, rule)
	}
	return t
}

func builtinRules() []Rule {
	return []Rule{
		{
			Kind:        Block,
			Description: "Full cube block: blockstate and model",
			Outputs: []Output{
				{Dir: paths.BlockstatesDir, Template: TemplateBlockBlockstate},
				{Dir: paths.BlockModelsDir, Template: TemplateBlockModel},
			},
			LangCategory: CategoryBlock,
			ItemModel:    &ItemModel{Template: TemplateBlockItemModel},
		},
		{
			Kind:        Slab,
			Description: "Slab: blockstate, bottom and top models",
			Outputs: []Output{
				{Dir: paths.BlockstatesDir, Suffix: "_slab", Template: TemplateSlabBlockstate},
				{Dir: paths.BlockModelsDir, Suffix: "_slab", Template: TemplateSlabModel},
				{Dir: paths.BlockModelsDir, Suffix: "_slab_top", Template: TemplateSlabModelTop},
			},
			LangCategory: CategoryBlock,
			LangSuffix:   "_slab",
			ItemModel:    &ItemModel{FileSuffix: "_slab", NameSuffix: "_slab", Template: TemplateBlockItemModel},
		},
		{
			Kind:        Stairs,
			Description: "Stairs: blockstate, straight, inner and outer models",
			Outputs: []Output{
				{Dir: paths.BlockstatesDir, Suffix: "_stairs", Template: TemplateStairBlockstate},
				{Dir: paths.BlockModelsDir, Suffix: "_stairs", Template: TemplateStairModel},
				{Dir: paths.BlockModelsDir, Suffix: "_stairs_inner", Template: TemplateStairModelInner},
				{Dir: paths.BlockModelsDir, Suffix: "_stairs_outer", Template: TemplateStairModelOuter},
			},
			LangCategory: CategoryBlock,
			LangSuffix:   "_stairs",
			ItemModel:    &ItemModel{FileSuffix: "_stairs", NameSuffix: "_stairs", Template: TemplateBlockItemModel},
		},
		{
			Kind:        Wall,
			Description: "Wall: multipart blockstate, inventory, post and side models",
			Outputs: []Output{
				{Dir: paths.BlockstatesDir, Suffix: "_wall", Template: TemplateWallBlockstate},
				{Dir: paths.BlockModelsDir, Suffix: "_wall_inventory", Template: TemplateWallModelInventory},
				{Dir: paths.BlockModelsDir, Suffix: "_wall_post", Template: TemplateWallModelPost},
				{Dir: paths.BlockModelsDir, Suffix: "_wall_side_tall", Template: TemplateWallModelSideTall},
				{Dir: paths.BlockModelsDir, Suffix: "_wall_side", Template: TemplateWallModelSide},
			},
			LangCategory: CategoryBlock,
			LangSuffix:   "_wall",
			// The wall item renders the inventory model, not the blockstate name
			ItemModel: &ItemModel{FileSuffix: "_wall", NameSuffix: "_wall_inventory", Template: TemplateBlockItemModel},
		},
		{
			Kind:        Item,
			Description: "Standalone item model; not allowed together with blockitem",
			Outputs: []Output{
				{Dir: paths.ItemModelsDir, Template: TemplateItemModel},
			},
			LangCategory:      CategoryItem,
			ExcludesBlockItem: true,
		},
	}
}
