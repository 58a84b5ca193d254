package content

import (
	"github.com/jonathan/site-customizer/internal/types"
)

// Starter returns a minimal configuration document that adapts cleanly: every required
// block present, hero and about active, and the fallback theme spelled out.
func Starter(d Defaults) *types.RawConfig {
	return &types.RawConfig{
		Versao: "3.0",
		Identidade: &types.RawIdentidade{
			NomeSite:  d.BrandTitle,
			Descricao: d.BrandDescription,
		},
		Menu: &types.RawMenu{
			Itens: []types.RawLink{
				{Rotulo: "Início", URL: "#inicio"},
				{Rotulo: "Sobre", URL: "#sobre"},
			},
			BotaoCTA: &types.RawBotaoCTA{
				Rotulo:   d.HeaderCTA.Label,
				URL:      d.HeaderCTA.URL,
				Destaque: d.HeaderCTA.Highlight,
			},
		},
		Contato:      &types.RawContato{},
		RedesSociais: &types.RawRedesSociais{},
		Secoes: &types.RawSecoes{
			Hero: &types.RawHero{
				Ativo:           true,
				Titulo:          d.BrandTitle,
				Subtitulo:       d.BrandDescription,
				ImagemFundo:     d.HeroImage,
				BotaoPrincipal:  &types.RawLink{Rotulo: d.HeaderCTA.Label, URL: d.HeaderCTA.URL},
				BotaoSecundario: &types.RawLink{Rotulo: "Saiba mais", URL: "#sobre"},
			},
			Beneficios:  &types.RawBeneficios{},
			Servicos:    &types.RawServicos{},
			Sobre:       &types.RawSobre{Ativo: true, Titulo: d.BrandTitle, Descricao: d.BrandDescription},
			Depoimentos: &types.RawDepoimentos{},
			FAQ:         &types.RawFAQ{},
			CTA: &types.RawCTA{
				Ativo:      true,
				Titulo:     "Vamos conversar?",
				BotaoTexto: d.HeaderCTA.Label,
				BotaoURL:   d.HeaderCTA.URL,
			},
			Rodape: &types.RawRodape{Copyright: Copyright(d.Year, d.BrandTitle)},
		},
		Configuracoes: &types.RawConfiguracoes{
			Tema: &types.RawTema{
				CorPrimaria:   d.Theme.Primary,
				CorSecundaria: d.Theme.Secondary,
				CorFundo:      d.Theme.Background,
				CorTexto:      d.Theme.Text,
				ModoEscuro:    d.Theme.DarkMode,
			},
			Funcionalidades: &types.RawFuncionalidades{},
		},
	}
}
