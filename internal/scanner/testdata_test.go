package scanner

const (
	shortASCII   = "foo [bar] baz"
	shortUnicode = "йцу [фыв] ячс"
	longASCII    = "qwerty qwerty qwetry qwerty qwerty qwetry [asd asd asd] zxcvb zxcvb zxcvb zxcvb zxcvb zxcvb"
	longUnicode  = "йцуке йцуке йцуке йцуке йцуке йцуке [фыв фыв фыв] ячсми ячсми ячсми ячсми ячсми ячсми"
)

const shortMultiline = `
# Starfinder

## Кампании

- [Мышеловка](20220820_mousetrap-campaign-starfinder.md)

## Персонажи

- [Кнопка](20220813_knopka-character-starfinder.md)
  - [Ведро (стелс-дрон Кнопки)](20220817_knopka-stealth-drone.md)

## Правила

- [Состояния](20220918_conditions-starfinder.md)
- [Бой](20220918_combat-starfinder.md)
- [Космический бой](20220827_space-fight-starfinder.md)
  - Действия экипажа
    - [Бортинженер](20220827_engineer-role-starfinder.md)
    - [Офицер по науке](20220827_science-officer-role-starfinder.md)
`

const longMultiline = `
# Grune, Dick, and Ceriel J. H. Jacobs. _Parsing Techniques: A Practical Guide_. 1990.

**Определение**: _Парсинг_ --- процесс структурирования линейного представления в соответствии с некоторой грамматикой [@grune_parsingtechniques_en_1990, 3].

## Грамматики как средства генерации предложений

Два типа символов [@grune_parsingtechniques_en_1990, 13]:

- **Определение**: _Терминальный символ_ --- символ, буквально присутствующий в предложениях языка (например, ` + "`42`" + `)
- **Определение**: _Нетерминальный символ_ --- символ, заменяющий собой некоторые части предложений 😀 [@grune_parsingtechniques_en_1990, 13].

**Определение**: _Грамматика с фразовой структурой_ --- набор $(V_N, V_T, R, S)$ такой, что:

1. $V_N$ и $V_T$ --- конечные множества символов;
2. $V_N \cap V_T = \empty$;
3. $R$ --- множество пар $(P, Q)$ таких, что
   i. $P \in (V_N \cup V_T)^+$;
   ii. $Q \in (V_N \cup V_T)^*$;
4. $S \in V_N$ [@grune_parsingtechniques_en_1990,
   14].

**Определение**: _Иерархия Хомского_ --- классификация 𝄞 формальных грамматик [по количеству [вложенных] ограничений] [незакрытая
`

var corpus = []struct {
	name  string
	input string
}{
	{"empty", ""},
	{"short ascii", shortASCII},
	{"short unicode", shortUnicode},
	{"long ascii", longASCII},
	{"long unicode", longUnicode},
	{"short multiline", shortMultiline},
	{"long multiline", longMultiline},
	{"astral", "😀 [x] 𝄞[😀😀]\n[😀\n😀]"},
	{"three byte", "€€€€€€€€€€€€€€€€€€€€€[中文]€€€€€€€€€€€€€€€€€€€€€"},
}
