// Package adapter maps the localized, versioned site configuration onto the canonical SiteData structure.
package adapter

import (
	"strings"

	"github.com/jonathan/site-customizer/internal/types"
)

// SupportedMajorVersion is the only raw document major version Adapt accepts
const SupportedMajorVersion = "3"

// Adapt renames every raw field onto its canonical counterpart. Lists keep their order and
// length, absent leaf fields become zero values, and no value is validated or defaulted.
// A nil document, an unsupported version or a missing required nested object yields a
// *SchemaMismatchError.
func Adapt(raw *types.RawConfig) (*types.SiteData, error) {
	if err := checkShape(raw); err != nil {
		return nil, err
	}

	secoes := raw.Secoes
	site := &types.SiteData{
		Version: raw.Versao,
		Identity: types.Identity{
			SiteName:    raw.Identidade.NomeSite,
			LogoURL:     raw.Identidade.LogoURL,
			FaviconURL:  raw.Identidade.FaviconURL,
			Description: raw.Identidade.Descricao,
			Keywords:    copyStrings(raw.Identidade.PalavrasChave),
		},
		Menu: types.Menu{
			Items: mapLinks(raw.Menu.Itens),
			CTAButton: types.CTAButton{
				Label:     raw.Menu.BotaoCTA.Rotulo,
				URL:       raw.Menu.BotaoCTA.URL,
				Highlight: raw.Menu.BotaoCTA.Destaque,
			},
		},
		Contact: types.Contact{
			Phone:    raw.Contato.Telefone,
			WhatsApp: raw.Contato.Whatsapp,
			Email:    raw.Contato.Email,
			Address:  raw.Contato.Endereco,
		},
		SocialLinks: types.SocialLinks{
			Instagram: raw.RedesSociais.Instagram,
			Facebook:  raw.RedesSociais.Facebook,
		},
		Hero: types.Hero{
			Title:    secoes.Hero.Titulo,
			Subtitle: secoes.Hero.Subtitulo,
			CTA:      secoes.Hero.BotaoPrincipal.Rotulo,
			CTAURL:   secoes.Hero.BotaoPrincipal.URL,
			Image:    secoes.Hero.ImagemFundo,
			Badge:    secoes.Hero.Badge,
			SecondaryButton: types.Link{
				Label: secoes.Hero.BotaoSecundario.Rotulo,
				URL:   secoes.Hero.BotaoSecundario.URL,
			},
		},
		Headings: types.Headings{
			Benefits: types.SectionHeading{
				Badge: secoes.Beneficios.Badge,
				Title: secoes.Beneficios.Titulo,
			},
			Services: types.SectionHeading{
				Badge:       secoes.Servicos.Badge,
				Title:       secoes.Servicos.Titulo,
				Description: secoes.Servicos.Descricao,
			},
			Testimonials: types.SectionHeading{
				Badge: secoes.Depoimentos.Badge,
				Title: secoes.Depoimentos.Titulo,
			},
			FAQ: types.SectionHeading{
				Badge: secoes.FAQ.Badge,
				Title: secoes.FAQ.Titulo,
			},
		},
		Benefits:     mapBenefits(secoes.Beneficios.Itens),
		Services:     mapServices(secoes.Servicos.Itens),
		About:        mapAbout(secoes.Sobre),
		Testimonials: mapTestimonials(secoes.Depoimentos.Itens),
		CTA: types.CTA{
			Title:      secoes.CTA.Titulo,
			Subtitle:   secoes.CTA.Descricao,
			ButtonText: secoes.CTA.BotaoTexto,
			ButtonURL:  secoes.CTA.BotaoURL,
		},
		FAQ: mapFAQ(secoes.FAQ.Itens),
		Footer: types.Footer{
			BrandDescription:         secoes.Rodape.DescricaoMarca,
			Copyright:                secoes.Rodape.Copyright,
			ProfessionalRegistration: secoes.Rodape.RegistroProfissional,
			Links:                    mapLinks(secoes.Rodape.Links),
		},
		Sections: types.Sections{
			Hero:         types.SectionState{Active: secoes.Hero.Ativo},
			Benefits:     types.SectionState{Active: secoes.Beneficios.Ativo},
			Services:     types.SectionState{Active: secoes.Servicos.Ativo},
			About:        types.SectionState{Active: secoes.Sobre.Ativo},
			Testimonials: types.SectionState{Active: secoes.Depoimentos.Ativo},
			CTA:          types.SectionState{Active: secoes.CTA.Ativo},
			FAQ:          types.SectionState{Active: secoes.FAQ.Ativo},
		},
	}

	if raw.Integracoes != nil {
		site.Integrations = types.Integrations{
			GoogleAnalyticsID: raw.Integracoes.GoogleAnalyticsID,
			MetaPixelID:       raw.Integracoes.MetaPixelID,
			GoogleAdsID:       raw.Integracoes.GoogleAdsID,
		}
	}

	if cfg := raw.Configuracoes; cfg != nil {
		if cfg.Tema != nil {
			site.Settings.Theme = &types.ThemeConfig{
				Primary:    cfg.Tema.CorPrimaria,
				Secondary:  cfg.Tema.CorSecundaria,
				Background: cfg.Tema.CorFundo,
				Text:       cfg.Tema.CorTexto,
				DarkMode:   cfg.Tema.ModoEscuro,
				PaletteID:  cfg.Tema.PaletaID,
			}
		}
		if cfg.Funcionalidades != nil {
			site.Settings.Features = types.Features{
				BlogEnabled:    cfg.Funcionalidades.BlogAtivo,
				NoticesEnabled: cfg.Funcionalidades.AvisosAtivos,
			}
		}
	}

	return site, nil
}

// checkShape verifies the version and every nested object Adapt dereferences
func checkShape(raw *types.RawConfig) error {
	if raw == nil {
		return &SchemaMismatchError{Message: "document is empty"}
	}
	if major(raw.Versao) != SupportedMajorVersion {
		return &SchemaMismatchError{
			Version: raw.Versao,
			Path:    "versao",
			Message: "unsupported version, expected " + SupportedMajorVersion + ".x",
		}
	}

	missing := func(path string) error {
		return &SchemaMismatchError{Version: raw.Versao, Path: path, Message: "required object is missing"}
	}

	switch {
	case raw.Identidade == nil:
		return missing("identidade")
	case raw.Menu == nil:
		return missing("menu")
	case raw.Menu.BotaoCTA == nil:
		return missing("menu.botaoCTA")
	case raw.Contato == nil:
		return missing("contato")
	case raw.RedesSociais == nil:
		return missing("redesSociais")
	case raw.Secoes == nil:
		return missing("secoes")
	}

	s := raw.Secoes
	switch {
	case s.Hero == nil:
		return missing("secoes.hero")
	case s.Hero.BotaoPrincipal == nil:
		return missing("secoes.hero.botaoPrincipal")
	case s.Hero.BotaoSecundario == nil:
		return missing("secoes.hero.botaoSecundario")
	case s.Beneficios == nil:
		return missing("secoes.beneficios")
	case s.Servicos == nil:
		return missing("secoes.servicos")
	case s.Sobre == nil:
		return missing("secoes.sobre")
	case s.Depoimentos == nil:
		return missing("secoes.depoimentos")
	case s.FAQ == nil:
		return missing("secoes.faq")
	case s.CTA == nil:
		return missing("secoes.cta")
	case s.Rodape == nil:
		return missing("secoes.rodape")
	}
	return nil
}

func major(version string) string {
	version = strings.TrimSpace(version)
	if i := strings.IndexByte(version, '.'); i >= 0 {
		return version[:i]
	}
	return version
}

func mapAbout(sobre *types.RawSobre) types.About {
	return types.About{
		Name:        sobre.Titulo,
		Title:       sobre.Badge,
		Description: sobre.Descricao,
		Highlights:  copyStrings(sobre.Destaques),
		Image:       sobre.Imagem,
	}
}

func mapLinks(in []types.RawLink) []types.Link {
	out := make([]types.Link, len(in))
	for i, l := range in {
		out[i] = types.Link{Label: l.Rotulo, URL: l.URL}
	}
	return out
}

func mapBenefits(in []types.RawBeneficio) []types.Benefit {
	out := make([]types.Benefit, len(in))
	for i, b := range in {
		out[i] = types.Benefit{Icon: b.Icone, Title: b.Titulo, Description: b.Descricao}
	}
	return out
}

func mapServices(in []types.RawServico) []types.Service {
	out := make([]types.Service, len(in))
	for i, s := range in {
		out[i] = types.Service{
			Title:       s.Titulo,
			Description: s.Descricao,
			Topics:      copyStrings(s.Topicos),
		}
	}
	return out
}

func mapTestimonials(in []types.RawDepoimento) []types.Testimonial {
	out := make([]types.Testimonial, len(in))
	for i, d := range in {
		out[i] = types.Testimonial{Name: d.Nome, Text: d.Texto, Image: d.FotoURL}
	}
	return out
}

func mapFAQ(in []types.RawPergunta) []types.FAQEntry {
	out := make([]types.FAQEntry, len(in))
	for i, p := range in {
		out[i] = types.FAQEntry{Question: p.Pergunta, Answer: p.Resposta}
	}
	return out
}

// copyStrings returns a non-nil copy so the adapted lists never alias the raw document
func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
