package extraction

// Default pattern tables, tuned for Platforma OFD receipt pages. Deployments
// targeting other document shapes can override any of these via Config.

// Advertising and tracking URL patterns eligible for removal from rendered
// text.
var defaultTrackingURLPatterns = []string{
	`urlstats\.platformaofd\.ru`,
	`share\.floctory\.com`,
	`cdn1\.platformaofd\.ru/checkmarketing`,
	`cdn1\.platformaofd\.ru/fido-constructor`,
	`page\.link`,
	`mc\.yandex\.ru`,
	`jivosite\.com`,
	`besteml\.com`,
}

// URL patterns exempt from tracking removal. Receipt PDF downloads and FNS
// verification links must survive even when they sit on a tracking domain.
var defaultKeepURLPatterns = []string{
	`/web/noauth/cheque/pdf`,
	`nalog\.gov\.ru`,
	`platformaofd\.ru/web/noauth/cheque/search`,
}

// Known promotional and decorative text, compiled case-insensitive and
// applied in order.
var defaultNoisePatterns = []string{
	`Вам подарки за проведенную оплату!?`,
	`Вам доступен \(\d+\) подарок за покупку!?`,
	`Подарок за оплату\s*`,
	`Выбрать подарок\s*`,
	`Забрать\s*`,
	`Активировать\s*`,
	`Ваш подарок за покупку неактивен\s*`,
	`волна`,    // decorative image alt text
	`Картинка`, // decorative image alt text
	`⭐️[^⭐]*⭐️`, // emoji-wrapped promo text
}

// CSS selectors for advertising blocks removed from the DOM before text
// rendering. These catch structured promo widgets that URL and phrase
// filtering would only partially clean up.
var defaultAdSelectors = []string{
	".checkmarketing",
	".check_marketing",
	".banner",
	`[class*="marketing"]`,
	`[id*="marketing"]`,
}
