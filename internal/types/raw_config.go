// Package types provides type definitions for structured data used throughout the site-customizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RawConfig is the versioned, localized (pt-BR keyed) source document describing the site.
// Nested objects are pointers so a missing section can be told apart from an empty one.
type RawConfig struct {
	Versao        string            `json:"versao"`
	Identidade    *RawIdentidade    `json:"identidade,omitempty"`
	Menu          *RawMenu          `json:"menu,omitempty"`
	Contato       *RawContato       `json:"contato,omitempty"`
	RedesSociais  *RawRedesSociais  `json:"redesSociais,omitempty"`
	Integracoes   *RawIntegracoes   `json:"integracoes,omitempty"`
	Secoes        *RawSecoes        `json:"secoes,omitempty"`
	Configuracoes *RawConfiguracoes `json:"configuracoes,omitempty"`
}

// RawIdentidade holds site identity and SEO metadata
type RawIdentidade struct {
	NomeSite      string   `json:"nomeSite"`
	LogoURL       string   `json:"logoUrl"`
	FaviconURL    string   `json:"faviconUrl"`
	Descricao     string   `json:"descricao"`
	PalavrasChave []string `json:"palavrasChave,omitempty"`
}

// RawLink is a labeled URL (menu items, footer links, buttons)
type RawLink struct {
	Rotulo string `json:"rotulo"`
	URL    string `json:"url"`
}

// RawBotaoCTA is the highlighted header call-to-action button
type RawBotaoCTA struct {
	Rotulo   string `json:"rotulo"`
	URL      string `json:"url"`
	Destaque bool   `json:"destaque"`
}

// RawMenu holds navigation items and the header CTA
type RawMenu struct {
	Itens    []RawLink    `json:"itens,omitempty"`
	BotaoCTA *RawBotaoCTA `json:"botaoCTA,omitempty"`
}

// RawContato holds contact channels
type RawContato struct {
	Telefone string `json:"telefone"`
	Whatsapp string `json:"whatsapp"`
	Email    string `json:"email"`
	Endereco string `json:"endereco"`
}

// RawRedesSociais holds social profile URLs
type RawRedesSociais struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
}

// RawIntegracoes holds third-party analytics identifiers
type RawIntegracoes struct {
	GoogleAnalyticsID string `json:"googleAnalyticsId"`
	MetaPixelID       string `json:"metaPixelId"`
	GoogleAdsID       string `json:"googleAdsId"`
}

// RawSecoes groups every per-feature content block
type RawSecoes struct {
	Hero        *RawHero        `json:"hero,omitempty"`
	Beneficios  *RawBeneficios  `json:"beneficios,omitempty"`
	Servicos    *RawServicos    `json:"servicos,omitempty"`
	Sobre       *RawSobre       `json:"sobre,omitempty"`
	Depoimentos *RawDepoimentos `json:"depoimentos,omitempty"`
	FAQ         *RawFAQ         `json:"faq,omitempty"`
	CTA         *RawCTA         `json:"cta,omitempty"`
	Rodape      *RawRodape      `json:"rodape,omitempty"`
}

// RawHero is the hero banner block
type RawHero struct {
	Ativo           bool     `json:"ativo"`
	Badge           string   `json:"badge"`
	Titulo          string   `json:"titulo"`
	Subtitulo       string   `json:"subtitulo"`
	ImagemFundo     string   `json:"imagemFundo"`
	BotaoPrincipal  *RawLink `json:"botaoPrincipal,omitempty"`
	BotaoSecundario *RawLink `json:"botaoSecundario,omitempty"`
}

// RawBeneficio is a single benefit card
type RawBeneficio struct {
	Icone     string `json:"icone"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

// RawBeneficios is the benefits block
type RawBeneficios struct {
	Ativo  bool           `json:"ativo"`
	Badge  string         `json:"badge"`
	Titulo string         `json:"titulo"`
	Itens  []RawBeneficio `json:"itens,omitempty"`
}

// RawServico is a single service offering
type RawServico struct {
	Titulo    string   `json:"titulo"`
	Descricao string   `json:"descricao"`
	Topicos   []string `json:"topicos,omitempty"`
}

// RawServicos is the services block
type RawServicos struct {
	Ativo     bool         `json:"ativo"`
	Badge     string       `json:"badge"`
	Titulo    string       `json:"titulo"`
	Descricao string       `json:"descricao"`
	Itens     []RawServico `json:"itens,omitempty"`
}

// RawSobre is the about block
type RawSobre struct {
	Ativo     bool     `json:"ativo"`
	Badge     string   `json:"badge"`
	Titulo    string   `json:"titulo"`
	Descricao string   `json:"descricao"`
	Imagem    string   `json:"imagem"`
	Destaques []string `json:"destaques,omitempty"`
}

// RawDepoimento is a single testimonial
type RawDepoimento struct {
	Nome    string `json:"nome"`
	Texto   string `json:"texto"`
	FotoURL string `json:"fotoUrl"`
}

// RawDepoimentos is the testimonials block
type RawDepoimentos struct {
	Ativo  bool            `json:"ativo"`
	Badge  string          `json:"badge"`
	Titulo string          `json:"titulo"`
	Itens  []RawDepoimento `json:"itens,omitempty"`
}

// RawPergunta is a single FAQ entry
type RawPergunta struct {
	Pergunta string `json:"pergunta"`
	Resposta string `json:"resposta"`
}

// RawFAQ is the FAQ block
type RawFAQ struct {
	Ativo  bool          `json:"ativo"`
	Badge  string        `json:"badge"`
	Titulo string        `json:"titulo"`
	Itens  []RawPergunta `json:"itens,omitempty"`
}

// RawCTA is the closing call-to-action block
type RawCTA struct {
	Ativo      bool   `json:"ativo"`
	Titulo     string `json:"titulo"`
	Descricao  string `json:"descricao"`
	BotaoTexto string `json:"botaoTexto"`
	BotaoURL   string `json:"botaoUrl"`
}

// RawRodape is the footer block
type RawRodape struct {
	DescricaoMarca       string    `json:"descricaoMarca"`
	Copyright            string    `json:"copyright"`
	RegistroProfissional string    `json:"registroProfissional"`
	Links                []RawLink `json:"links,omitempty"`
}

// RawTema holds the designer-supplied base colors
type RawTema struct {
	CorPrimaria   string `json:"corPrimaria"`
	CorSecundaria string `json:"corSecundaria"`
	CorFundo      string `json:"corFundo"`
	CorTexto      string `json:"corTexto"`
	ModoEscuro    bool   `json:"modoEscuro"`
	PaletaID      string `json:"paletaId,omitempty"`
}

// RawFuncionalidades holds feature flags
type RawFuncionalidades struct {
	BlogAtivo    bool `json:"blogAtivo"`
	AvisosAtivos bool `json:"avisosAtivos"`
}

// RawConfiguracoes holds theme and feature settings
type RawConfiguracoes struct {
	Tema            *RawTema            `json:"tema,omitempty"`
	Funcionalidades *RawFuncionalidades `json:"funcionalidades,omitempty"`
}
