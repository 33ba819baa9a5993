package template

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEntityType is returned when a resolved entity_type has no
// registered template set.
var ErrUnknownEntityType = errors.New("unknown entity type")

// DefaultEntityType is used when the configuration leaves entity_type
// unset.
const DefaultEntityType = "component"

// macroTemplate defines the single-argument and long forms of an icon
// macro. alias and label are passed through to the generated macro.
const macroTemplate = `!define {macro}(alias) PUML_ENTITY({entity_type},{color},{sprite_name},alias,{stereotype})

!definelong {macro}(alias,label,e_type="{entity_type}",e_color="{color}",e_stereo="{esc_stereotype}",e_sprite="{sprite_name}")
PUML_ENTITY(e_type,e_color,e_sprite,label,alias,e_stereo)
!enddefinelong
`

// skinTemplate declares the stereotype skinparam block for an icon.
const skinTemplate = `skinparam {entity_type}<<{stereotype}>> {
    {skinparam}
}
`

// spriteTemplate wraps the encoded sprite block.
const spriteTemplate = `{sprite}
`

// commonTemplate is the shared prelude every generated file depends on,
// written once at the output root as common.puml.
const commonTemplate = `@startuml
!define PUML_ENTITY(e_type,e_color,e_sprite,e_alias,e_stereo) e_type "<color:e_color><$e_sprite></color>" as e_alias <<e_stereo>>
!define PUML_ENTITY(e_type,e_color,e_sprite,e_label,e_alias,e_stereo) e_type "<color:e_color><$e_sprite></color>\ne_label" as e_alias <<e_stereo>>

skinparam defaultTextAlignment center
@enduml
`

// entityTypes are the PlantUML entity keywords with a built-in template
// set.
var entityTypes = []string{
	"actor",
	"agent",
	"artifact",
	"boundary",
	"card",
	"cloud",
	"component",
	"database",
	"folder",
	"frame",
	"interface",
	"node",
	"queue",
	"rectangle",
	"storage",
}

// Set is the template group rendered for one icon: its macro definitions,
// its stereotype skinparam block, and its sprite declaration.
type Set struct {
	Macro  string
	Skin   string
	Sprite string
}

// Params carries the substitution values for one icon.
type Params struct {
	Macro             string
	EntityType        string
	Color             string
	Stereotype        string
	EscapedStereotype string
	SpriteName        string
	Sprite            string
	Skinparam         string
}

// Registry maps entity types to template sets. The registry is fixed after
// construction; the generator only reads it.
type Registry struct {
	sets map[string]Set
}

// NewRegistry creates a Registry pre-populated with the built-in template
// set for every recognized PlantUML entity keyword.
func NewRegistry() *Registry {
	registry := &Registry{sets: make(map[string]Set, len(entityTypes))}

	builtin := Set{
		Macro:  macroTemplate,
		Skin:   skinTemplate,
		Sprite: spriteTemplate,
	}

	for _, entityType := range entityTypes {
		registry.sets[entityType] = builtin
	}

	return registry
}

// Register adds or replaces the template set for an entity type.
func (r *Registry) Register(entityType string, set Set) {
	r.sets[strings.ToLower(entityType)] = set
}

// Lookup returns the template set for entityType. An empty entityType falls
// back to DefaultEntityType; an unregistered one fails with
// ErrUnknownEntityType.
func (r *Registry) Lookup(entityType string) (Set, error) {
	if entityType == "" {
		entityType = DefaultEntityType
	}

	set, ok := r.sets[strings.ToLower(entityType)]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}

	return set, nil
}

// Render substitutes params into a template string. Unknown {name} tokens
// are left untouched.
func Render(text string, params Params) string {
	replacer := strings.NewReplacer(
		"{macro}", params.Macro,
		"{entity_type}", params.EntityType,
		"{color}", params.Color,
		"{stereotype}", params.Stereotype,
		"{esc_stereotype}", params.EscapedStereotype,
		"{sprite_name}", params.SpriteName,
		"{sprite}", params.Sprite,
		"{skinparam}", params.Skinparam,
	)

	return replacer.Replace(text)
}

// Common returns the shared prelude content.
func Common() string {
	return commonTemplate
}
