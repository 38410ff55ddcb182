package models

import (
	"strings"
)

// Section is one labeled region of the landing page together with the chat
// contextualization metadata tied to it. The set is static and known at
// build time.
type Section struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Callout     [3]string `json:"callout"`
	Summary     string    `json:"summary"`
	Badges      []string  `json:"badges"`
	Suggestions []string  `json:"suggestions"`
	Keywords    []string  `json:"keywords"`
	Context     string    `json:"context"`
	Placeholder string    `json:"placeholder"`
}

// SectionOrder is the tracker priority order. When two rects both straddle
// the viewport midpoint the first id in this list wins.
var SectionOrder = []string{
	"hero",
	"proposito",
	"quem-somos",
	"nosso-ecossistema",
	"solucoes-org",
	"colabs",
	"esg",
	"contato",
}

const (
	WelcomeMessage = "Olá! Sou o assistente virtual da Arbache Consulting. Como posso ajudá-lo hoje?"

	// Shown when the chat API call fails or times out.
	ChatErrorMessage = "Desculpe, ocorreu um erro ao processar sua mensagem. Por favor, tente novamente em alguns instantes."

	// Shown when the chat API answers without a response field.
	ChatEmptyResponseMessage = "Desculpe, não consegui processar sua mensagem. Tente novamente."

	// The callout always links to the contact section, no matter which
	// section triggered it.
	CalloutLinkTarget = "#contato"
	CalloutLinkLabel  = "ou entre em contato"
)

var Sections = map[string]Section{
	"hero": {
		ID:      "hero",
		Title:   "Hero",
		Callout: [3]string{"Tem dúvidas?", "Pergunte à", "nossa IA"},
		Summary: "A Arbache Consulting transforma organizações por meio da educação de liderança, inovação e sustentabilidade. Fundada por Ana Paula Arbache, PhD e SDG Pioneer da ONU.",
		Badges:  []string{"Educação Corporativa", "Liderança", "ESG", "Inovação"},
		Suggestions: []string{
			"O que a Arbache Consulting faz?",
			"Quem é Ana Paula Arbache?",
			"Quais serviços vocês oferecem?",
			"Como posso entrar em contato?",
		},
		Keywords:    []string{"arbache", "consultoria", "educação", "liderança", "sustentabilidade"},
		Context:     "Página inicial",
		Placeholder: "Digite sua mensagem...",
	},

	"proposito": {
		ID:      "proposito",
		Title:   "Propósito",
		Callout: [3]string{"Nosso Propósito", "Pergunte à", "nossa IA"},
		Summary: "Nosso propósito é transformar o mundo por meio da educação. Acreditamos na excelência, personalização, ética e valores compartilhados como pilares fundamentais.",
		Badges:  []string{"Missão", "Visão", "Valores", "Excelência"},
		Suggestions: []string{
			"Qual a missão da Arbache?",
			"Quais são os valores da empresa?",
			"O que diferencia a Arbache das demais consultorias?",
		},
		Keywords:    []string{"propósito", "missão", "visão", "valores", "excelência", "ética"},
		Context:     "Missão, visão e valores",
		Placeholder: "Pergunte sobre nosso propósito...",
	},

	"quem-somos": {
		ID:      "quem-somos",
		Title:   "Quem Somos",
		Callout: [3]string{"Quem Somos", "Pergunte à", "nossa IA"},
		Summary: "A equipe Arbache reúne especialistas com décadas de experiência em educação corporativa, tecnologia, gestão e sustentabilidade. Liderados por Ana Paula Arbache, PhD e SDG Pioneer da ONU.",
		Badges:  []string{"Ana Paula Arbache", "Fernando Arbache", "Alexandre Vieira", "Fernando Bastos"},
		Suggestions: []string{
			"Qual a formação da Ana Paula Arbache?",
			"Quem são os especialistas da equipe?",
			"Quais são as áreas de expertise do time?",
		},
		Keywords:    []string{"equipe", "time", "ana paula", "fernando", "especialistas", "fundadora"},
		Context:     "Equipe e fundadores",
		Placeholder: "Pergunte sobre a equipe...",
	},

	"nosso-ecossistema": {
		ID:      "nosso-ecossistema",
		Title:   "Nosso Ecossistema",
		Callout: [3]string{"Nosso Ecossistema", "Pergunte à", "nossa IA"},
		Summary: "O ecossistema Arbache integra seis pilares: Educação Corporativa, Liderança, Gestão de Carreira, RH, Inovação e IA, e ESG. Cada pilar oferece soluções especializadas e complementares.",
		Badges:  []string{"Educação Corporativa", "Liderança", "Gestão de Carreira", "RH", "Inovação e IA", "ESG"},
		Suggestions: []string{
			"Quais são os pilares do ecossistema?",
			"Como funciona a integração entre os pilares?",
			"Qual pilar é ideal para minha empresa?",
			"Como a IA se integra ao ecossistema?",
		},
		Keywords:    []string{"ecossistema", "pilares", "educação", "liderança", "carreira", "rh", "ia", "esg"},
		Context:     "Ecossistema de soluções integradas",
		Placeholder: "Pergunte sobre o ecossistema...",
	},

	"solucoes-org": {
		ID:      "solucoes-org",
		Title:   "Soluções para Organizações",
		Callout: [3]string{"Nossas Soluções", "Pergunte à", "nossa IA"},
		Summary: "Oferecemos 11 soluções integradas: Trilhas Educacionais, Curadoria, Formação de Lideranças, Assessment com IA, Consultoria ESG, Mentoria de Alto Impacto, Auditorias, Imersões, Networking, Gestão de RH e Palestras.",
		Badges:  []string{"Trilhas Educacionais", "Assessment IA", "Mentoria", "Formação de Lideranças", "Palestras"},
		Suggestions: []string{
			"Como funcionam as trilhas educacionais?",
			"O que é o Assessment de Soft Skills com IA?",
			"Quais tipos de mentoria vocês oferecem?",
			"Como contratar uma palestra corporativa?",
		},
		Keywords: []string{
			"soluções", "trilhas", "assessment", "mentoria", "palestras",
			"liderança", "auditoria", "imersão", "consultoria", "rh",
		},
		Context:     "Soluções e serviços para organizações",
		Placeholder: "Pergunte sobre nossas soluções...",
	},

	"colabs": {
		ID:      "colabs",
		Title:   "Co.Labs",
		Callout: [3]string{"Nossos Parceiros", "Pergunte à", "nossa IA"},
		Summary: "O Co.Labs é o laboratório de inovação e colaboração da Arbache. Reunimos parceiros como Resorts Brasil, MIT, Senac, Escola de Etiqueta e Hotelier News para criar soluções de alto impacto.",
		Badges:  []string{"Resorts Brasil", "MIT", "Senac", "Escola de Etiqueta", "Hotelier News"},
		Suggestions: []string{
			"Quem são os parceiros da Arbache?",
			"Como funciona o Co.Labs?",
			"Qual a parceria com o MIT?",
			"Como se tornar parceiro?",
		},
		Keywords:    []string{"parceiros", "colabs", "co.labs", "mit", "senac", "resorts", "colaboração"},
		Context:     "Co-Labs parceiros",
		Placeholder: "Pergunte sobre os parceiros...",
	},

	"esg": {
		ID:      "esg",
		Title:   "ESG",
		Callout: [3]string{"Nosso ESG", "Pergunte à", "nossa IA"},
		Summary: "A Arbache é referência em ESG com iniciativas como o HubMulher, Knowledge Hub e reconhecimento como SDG Pioneer pela ONU. Atuamos com sustentabilidade, diversidade e impacto social.",
		Badges:  []string{"HubMulher", "Knowledge Hub", "SDG Pioneer", "Sustentabilidade"},
		Suggestions: []string{
			"O que é o HubMulher?",
			"Qual o papel da Arbache nos ODS da ONU?",
			"Como a Arbache atua em sustentabilidade?",
			"O que é o Knowledge Hub?",
		},
		Keywords:    []string{"esg", "sustentabilidade", "hubmulher", "ods", "onu", "sdg", "diversidade", "impacto"},
		Context:     "Sustentabilidade",
		Placeholder: "Pergunte sobre ESG...",
	},

	"contato": {
		ID:      "contato",
		Title:   "Contato",
		Callout: [3]string{"Dúvidas?", "Pergunte à", "nossa IA"},
		Summary: "Entre em contato para saber mais sobre nossas soluções em Educação Corporativa, ESG, Mentoria e Palestras. Agende uma conversa com nossa equipe.",
		Badges:  []string{"Fale Conosco", "Agende uma Conversa"},
		Suggestions: []string{
			"Como agendar uma reunião?",
			"Quais soluções são ideais para minha empresa?",
			"Vocês atendem empresas de qual porte?",
			"Qual o investimento médio dos programas?",
		},
		Keywords:    []string{"contato", "falar", "agendar", "reunião", "proposta", "investimento"},
		Context:     "Contato",
		Placeholder: "Pergunte sobre contato e agendamento...",
	},
}

// SectionByID looks a section up by id, falling back to hero for unknown or
// empty ids so lookups always succeed.
func SectionByID(id string) Section {
	if section, ok := Sections[id]; ok {
		return section
	}
	return Sections["hero"]
}

// FAQ holds instant answers served without calling the chat API.
var FAQ = map[string]string{
	"o que a arbache faz": "A Arbache Consulting oferece soluções integradas em educação corporativa, liderança, ESG e sustentabilidade. Ajudamos organizações a desenvolver pessoas, transformar culturas e gerar impacto positivo. Quer saber mais sobre alguma solução específica?",

	"quem é ana paula arbache": "Ana Paula Arbache é a fundadora e CEO da Arbache Consulting. É PhD, SDG Pioneer reconhecida pela ONU, e especialista em educação corporativa, liderança e sustentabilidade. Com mais de duas décadas de experiência, lidera projetos de transformação organizacional no Brasil e no exterior.",

	"como entrar em contato": "Você pode entrar em contato pelo formulário na seção Contato do nosso site. Nossa equipe retorna em até 24h úteis. Temos soluções para empresas de todos os portes.",

	"quais serviços vocês oferecem": "Oferecemos 11 soluções integradas: Trilhas Educacionais, Curadoria de Conteúdo, Formação de Lideranças, Assessment de Soft Skills com IA, Consultoria ESG, Mentoria de Alto Impacto, Auditorias, Imersões Técnicas, Networking, Gestão de RH e Palestras Corporativas.",

	"o que é o hubmulher": "O HubMulher é uma iniciativa da Arbache voltada para o empoderamento feminino e liderança da mulher no mercado de trabalho. Promovemos eventos, mentorias e conteúdos que fortalecem a presença feminina em posições de liderança.",

	"o que é o colabs": "O Co.Labs é o laboratório de inovação e colaboração da Arbache Consulting. Reunimos parceiros estratégicos como MIT, Senac, Resorts Brasil e Hotelier News para criar soluções de alto impacto em educação e liderança.",

	"qual a missão da arbache": "Nossa missão é transformar organizações e pessoas por meio da educação de excelência. Acreditamos que a combinação de liderança, sustentabilidade e inovação é o caminho para resultados extraordinários.",

	"quais são os valores da empresa": "Nossos valores são: Excelência em tudo que fazemos, Personalização das soluções, Ética e transparência, Inovação contínua e Impacto positivo na sociedade.",

	"como funciona o assessment com ia": "O Assessment de Soft Skills com IA é uma ferramenta que mapeia competências comportamentais usando inteligência artificial. Oferece diagnósticos precisos e planos de desenvolvimento personalizados para equipes e líderes.",

	"como funcionam as trilhas educacionais": "As Trilhas Educacionais são programas personalizados de aprendizagem contínua. Combinamos master classes, workshops práticos e acompanhamento para desenvolver competências específicas alinhadas aos objetivos da sua organização.",

	"quem são os parceiros": "Nossos principais parceiros incluem MIT, Senac, Resorts Brasil, Escola de Etiqueta, Hotelier News, entre outros. Cada parceria potencializa nosso ecossistema de soluções integradas.",

	"vocês atendem empresas de qual porte": "Atendemos empresas de todos os portes — de startups a grandes corporações. Nossas soluções são personalizadas e escaláveis conforme a necessidade de cada organização.",

	"o que é esg": "ESG significa Environmental, Social and Governance (Ambiental, Social e Governança). Na Arbache, somos referência em consultoria ESG, ajudando empresas a implementar práticas sustentáveis, promover diversidade e melhorar sua governança corporativa.",

	"qual o papel da arbache nos ods": "Ana Paula Arbache é reconhecida como SDG Pioneer pela ONU, reforçando nosso compromisso com os Objetivos de Desenvolvimento Sustentável. Atuamos diretamente em educação de qualidade, igualdade de gênero e trabalho decente.",

	"como agendar uma reunião": "Para agendar uma reunião, preencha o formulário na seção Contato do nosso site indicando a solução de interesse. Nossa equipe entrará em contato em até 24h úteis para alinhar a melhor data.",
}

// MatchFAQ fuzzy-matches a message against the FAQ keys. Either the message
// contains a key or the key contains the whole message.
func MatchFAQ(message string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return "", false
	}
	for key, answer := range FAQ {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return answer, true
		}
	}
	return "", false
}
