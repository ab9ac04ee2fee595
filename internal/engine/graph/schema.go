package graph

// Layer is the architectural tier a component belongs to. The four values
// form the layered-style total order; other styles derive their own
// partitions from ComponentType instead.
type Layer string

const (
	LayerUnset        Layer = ""
	LayerPresentation Layer = "presentation"
	LayerBusiness     Layer = "business"
	LayerDataAccess   Layer = "data_access"
	LayerDomain       Layer = "domain"
)

func ParseLayer(s string) (Layer, bool) {
	switch Layer(s) {
	case LayerPresentation, LayerBusiness, LayerDataAccess, LayerDomain:
		return Layer(s), true
	case LayerUnset:
		return LayerUnset, true
	}
	return LayerUnset, false
}

// ComponentType is the finer-grained role vocabulary shared by every style
// detector. One classification pass labels nodes; each detector maps the
// types it cares about into its own partition.
type ComponentType string

const (
	TypeUnset          ComponentType = ""
	TypeController     ComponentType = "controller"
	TypeService        ComponentType = "service"
	TypeRepository     ComponentType = "repository"
	TypeModel          ComponentType = "model"
	TypeEntity         ComponentType = "entity"
	TypeUseCase        ComponentType = "usecase"
	TypePort           ComponentType = "port"
	TypeAdapter        ComponentType = "adapter"
	TypeInfrastructure ComponentType = "infrastructure"
	TypeFramework      ComponentType = "framework"
	TypeGateway        ComponentType = "gateway"
	TypeEvent          ComponentType = "event"
	TypeHandler        ComponentType = "handler"
	TypeProducer       ComponentType = "producer"
	TypeConsumer       ComponentType = "consumer"
	TypeBroker         ComponentType = "broker"
)

func ParseComponentType(s string) (ComponentType, bool) {
	switch ComponentType(s) {
	case TypeController, TypeService, TypeRepository, TypeModel, TypeEntity,
		TypeUseCase, TypePort, TypeAdapter, TypeInfrastructure, TypeFramework,
		TypeGateway, TypeEvent, TypeHandler, TypeProducer, TypeConsumer,
		TypeBroker:
		return ComponentType(s), true
	case TypeUnset:
		return TypeUnset, true
	}
	return TypeUnset, false
}

// Match is one construct found in a file by the external pattern extractor.
// Target, when present, is the extractor's resolved path for a reference.
type Match struct {
	Name   string `json:"name"`
	Type   string `json:"type,omitempty"`
	Line   int    `json:"line,omitempty"`
	Target string `json:"target,omitempty"`
}

// FileRecord is the per-file input the core consumes. Imports carries
// resolved import targets (paths); unresolvable targets were already dropped
// by the extractor or will be dropped here when no node exists for them.
type FileRecord struct {
	File      string             `json:"file"`
	Qualifier string             `json:"qualifier,omitempty"`
	Patterns  map[string][]Match `json:"patterns,omitempty"`
	Imports   []string           `json:"imports,omitempty"`
	LOC       int                `json:"loc,omitempty"`
}
