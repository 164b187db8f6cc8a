// Package menu holds the restaurant's reference menu data and the
// lookups over it. The data is seeded into the database at startup and
// treated as immutable afterwards.
package menu

import "cape/internal/models"

// Categories is the published category order.
var Categories = []string{
	"appetizers",
	"salads",
	"soups",
	"main-courses",
	"dumplings",
	"pastas",
	"pizzas",
	"breads",
	"sushis",
	"desserts",
}

var items = []models.MenuItem{
	{
		ID:          1,
		Name:        "«Шепот холодных морей» Мидии в сливочно-чесночном соусе",
		Composition: "мидии, сливочный соус, чеснок, лук зеленый",
		Legend:      "На Курильских островах говорят: «Настоящая мидия — та, что три года слушала, как бьётся сердце океана» Эти мидии впитывают вкус Курильских туманов, их раковины хранят отзвуки штормов Японского моря.",
		Weight:      "390 г",
		Price:       "780.-",
		ImageURL:    "/assets/appetizers-1.jpg",
		Category:    "appetizers",
	},
	{
		ID:          2,
		Name:        "«На волне специй» Тигровые креветки в соусе карри, подаются с кукурузным хлебом",
		Composition: "креветки тигровые, кокосовое молоко, соус карри, чеснок, томаты, кинза, лук зеленый, кабачки",
		Legend:      "Легенды гласят, шеф-повар, вдохновленный рассказами странников о далекой Индии, решил связать два мира — вкус моря и пряный аромат карри. Так появился этот рецепт.",
		Weight:      "350 г",
		Price:       "970.-",
		ImageURL:    "/assets/appetizers-2.jpg",
		Category:    "appetizers",
	},
	{
		ID:          3,
		Name:        "Строганина из пеламиды",
		Composition: "филе атлантической пеламиды, соус на основе тамаринда с черносливом, лук красный маринованный, хлеб бородинский, лимон",
		Weight:      "230 г",
		Price:       "790.-",
		ImageURL:    "/assets/appetizers-3.jpg",
		Category:    "appetizers",
	},
	{
		ID:          4,
		Name:        "Тартар из говядины по-азиатски",
		Composition: "говядина, рисовые чипсы, зеленый лук, трюфельный крем",
		Legend:      "Тартар из говядины — это французская интерпретация сырых мясных блюд, вдохновлённая экзотическими легендами о татарах. Сегодня это деликатес высокой кухни.",
		Weight:      "170 г",
		Price:       "790.-",
		ImageURL:    "/assets/appetizers-1.jpg",
		Category:    "appetizers",
	},
	{
		ID:          5,
		Name:        "Тартар из маринованного лосося",
		Composition: "лосось маринованный, авокадо, томаты, лук шнит, соус ореховый, крем-чиз, цитрусовый майонез",
		Legend:      "Тартар из лосося – это фьюжн-блюдо, объединившее: французскую технику (мелкая нарезка, соусы), скандинавский опыт (маринование рыбы), азиатские мотивы (кислые маринады). Его история коротка, но насыщенна – от кухни викингов до мишленовских ресторанов!",
		Weight:      "230 г",
		Price:       "770.-",
		ImageURL:    "/assets/appetizers-2.jpg",
		Category:    "appetizers",
	},
	{
		ID:          6,
		Name:        "«Форт Манго» Креветки темпура",
		Composition: "тигровые креветки, кляр темпура, соус манго, кунжутный соус, микс салат",
		Legend:      "Говорят, рецепт этого соуса привезли в Кронштадт моряки с дальних островов — в трюмах их кораблей среди ящиков с провизией случайно оказались спелые манго. Местный кок, вдохновившись японской темпурой (о которой уже ходили легенды в порту), смешал пюре манго с имбирём и перчиком — так родился этот нежный, но дерзкий союз северного ветра и южного солнца.",
		Weight:      "210 г",
		Price:       "590.-",
		ImageURL:    "/assets/appetizers-3.jpg",
		Category:    "appetizers",
	},
	{
		ID:          7,
		Name:        "Пармская ветчина",
		Composition: "окорок свиной сыровяленный, клубника, микрозелень, хлеб кукурузный",
		Weight:      "130 г",
		Price:       "650.-",
		ImageURL:    "/assets/appetizers-2.jpg",
		Category:    "appetizers",
	},
	{
		ID:          8,
		Name:        "Сырная тарелка",
		Composition: "сыр пармезан, дор блю, маасдам, фундук, грецкий орех, клубника, голубика, мед, микрозелень",
		Weight:      "210 г",
		Price:       "880.-",
		ImageURL:    "/assets/appetizers-1.jpg",
		Category:    "appetizers",
	},
	{
		ID:          9,
		Name:        "«Адмиральская тайна» Паштет из куриной печени",
		Composition: "куриная печень, моченая брусника, яблочный конфитюр, микрозелень, хлебные чипсы",
		Legend:      "По слухам, этот рецепт любил один Кронштадтский адмирал, а его повар добавлял в паштет секретный ингредиент — каплю коньяка из корабельных запасов.",
		Weight:      "220 г",
		Price:       "530.-",
		ImageURL:    "/assets/appetizers-3.jpg",
		Category:    "appetizers",
	},
	{
		ID:          10,
		Name:        "«Русская тройка» Ассорти из сала",
		Composition: "сало 3 вида, соленный огурчик, помидорчик, капуста, хлеб бородинский, горчица, хрен",
		Legend:      "Почему «тройка»? Три богатыря закуски – сало, мясо, соленья. Три стихии – жир, белок, кислота. Три удара по голоду, жажде и тоске. «Русская тройка не подведёт – либо врага с ног собьёт, либо похмелье победит!»",
		Weight:      "210 г",
		Price:       "540.-",
		ImageURL:    "/assets/appetizers-1.jpg",
		Category:    "appetizers",
	},
	{
		ID:          11,
		Name:        "«Царский Оливье» Салат оливье с куриной грудкой",
		Composition: "мясо цыпленка, картофель печеный, горошек,огурец соленый бочковой, яйцо отварное, майонез",
		Legend:      "Этот салат придумал в Москве француз Люсьен Оливье ещё при Николае II. Одно из излюбленных блюд императорской семьи, подавался на царской яхте.",
		Weight:      "240 г",
		Price:       "460.-",
		ImageURL:    "/assets/salad-1.jpg",
		Category:    "salads",
	},
	{
		ID:          12,
		Name:        "«Император или повар» Цезарь с курицей",
		Composition: "куриная грудка,салат ромейн, салат айсберг, сыр пармезан, соус цезарь",
		Legend:      "Два гения: полководец или кулинар. Салат назван не в честь императора, а по имени повара Цезаря Кардини, который в 1920-х годах в США придумал рецепт. Любимый салат голливудских звезд.",
		Weight:      "235 г",
		Price:       "660.-",
		ImageURL:    "/assets/salad-2.jpg",
		Category:    "salads",
	},
	{
		ID:          13,
		Name:        "Цезарь с креветкой",
		Composition: "креветки, салат ромейн, салат айсберг, сыр пармезан, соус цезарь",
		Legend:      "Оригинальный рецепт салата никогда не содержал курицу — её придумали позже ленивые повара. Но креветки в нём появились не просто так: в 1924 году Цезарь Кардини увидел сон, где римский император Юлий Цезарь ел салат с розовыми морскими тварями и говорил: «Это пища победителей».",
		Weight:      "200 г",
		Price:       "760.-",
		ImageURL:    "/assets/salad-3.jpg",
		Category:    "salads",
	},
	{
		ID:          14,
		Name:        "Салат с маринованным лососем и кремом из авокадо",
		Composition: "филе лосося, крем авокадо, микс салата, редис свежий, томаты черри, бобы эдомамэ, микрозелень",
		Weight:      "240 г",
		Price:       "740.-",
		ImageURL:    "/assets/salad-1.jpg",
		Category:    "salads",
	},
	{
		ID:          15,
		Name:        "Салат севиче из тунца",
		Composition: "филе атлантического тунца, огурец битый, маринованные томаты, микс салата, перец шичими, соус севиче",
		Weight:      "200 г",
		Price:       "690.-",
		ImageURL:    "/assets/salad-2.jpg",
		Category:    "salads",
	},
	{
		ID:          16,
		Name:        "«Дар Анатолии» Салат с хрустящими баклажанами",
		Composition: "баклажаны, томаты, кинза,лук зеленый, кунжут, стамбульский соус",
		Legend:      "Старая турецкая поговорка гласит: «Если баклажан на сковороде не звенит, как сабля — он не достоин тебя». P.S. Если баклажаны вдруг станут мягкими — это не ваша вина. Просто они вас полюбили.",
		Weight:      "250 г",
		Price:       "560.-",
		ImageURL:    "/assets/salad-3.jpg",
		Category:    "salads",
	},
	{
		ID:          17,
		Name:        "Салат с подкопченным куриным филе и маринованными опятами",
		Composition: "филе куриное, маринованные опята, огурец битый, редис свежий, микс салата, яйцо перепелиное, микрозелень, соус тонато",
		Weight:      "260 г",
		Price:       "470.-",
		ImageURL:    "/assets/salad-1.jpg",
		Category:    "salads",
	},
	{
		ID:          18,
		Name:        "«Адмиральский» Флотский борщ по рецепту адмирала Макарова",
		Composition: "Мясо говядины, лук, морковь, капуста, свекла, укроп",
		Legend:      "В 1900 году в Кронштадте по приказу адмирала Макарова корабельные коки разработали особый рецепт борща – сытный, ароматный с добавлением свеклы, как на черноморском флоте.",
		Weight:      "430 г",
		Price:       "590.-",
		ImageURL:    "/assets/soup-1.jpg",
		Category:    "soups",
	},
	{
		ID:          19,
		Name:        "«Огненный шепот джунглей и моря» Том ям с морепродуктами – традиционное наследие Тайланда, тайский суп на кокосовом молоке",
		Composition: "тигровые креветки, кальмар, мидии, грибы шампиньоны, томаты черри, кокосовое молоко, лук, кинза",
		Legend:      "Считается, что «Том Ям» изначально готовили крестьяне и рыбаки, используя то, что было под рукой. А в наше время этот суп стал популярным во всем мире.",
		Weight:      "470 г",
		Price:       "860.-",
		ImageURL:    "/assets/soup-2.jpg",
		Category:    "soups",
	},
	{
		ID:          20,
		Name:        "«Лохикейто» Уха по-фински",
		Composition: "кета, картофель, лук-порей, томаты черри, сливки, лук зеленый, укроп",
		Legend:      "Лохикейто – живая душа заснеженной Ладоги.",
		Weight:      "400 г",
		Price:       "790.-",
		ImageURL:    "/assets/soup-3.jpg",
		Category:    "soups",
	},
	{
		ID:          21,
		Name:        "«Удача» Куриный суп по рецепту адмирала Ушакова",
		Composition: "куриное бедро,яичная лапша, лук, морковь, корень сельдерея, укроп",
		Legend:      "В 18-м веке, когда русские корабли ходили в дальние плавания, коки придумали особый рецепт «штормового супа». Говорят, Адмирал Ушаков перед каждым боем ел именно этот суп – и ни один его корабль не утонул!",
		Weight:      "360 г",
		Price:       "370.-",
		ImageURL:    "/assets/soup-1.jpg",
		Category:    "soups",
	},
	{
		ID:          22,
		Name:        "Грибной крем-суп из белых грибов",
		Composition: "лесные грибы, сливки, трюфельное масло",
		Weight:      "330 г",
		Price:       "520.-",
		ImageURL:    "/assets/soup-2.jpg",
		Category:    "soups",
	},
	{
		ID:          23,
		Name:        "«Офицерская» Окрошка на квасе",
		Composition: "Квас, язык говяжий, огурец свежий, редиска, яйцо отварное, зеленый лук, укроп.",
		Legend:      "Согласно циркуляру морского штаба от 1887 г., в рацион команд паровых судов, совершавших дальние плавания, в обязательном порядке включалось холодное квашеное блюдо на основе хлебного кваса.",
		Weight:      "350 г",
		Price:       "490.-",
		ImageURL:    "/assets/soup-3.jpg",
		Category:    "soups",
	},
	{
		ID:          24,
		Name:        "«Таратор» Холодный Балканский суп",
		Composition: "Кефир, огурец, орех грецкий, мята, масло оливковое, сумах",
		Legend:      "В балканском фольклоре есть легенда, что слово составлено из: «Тара»(имя духа ветра) и «Тор» (древний бог грома). Будто бы суп был ритуальным блюдом, «охлаждающим» гнев стихий.",
		Weight:      "250 г",
		Price:       "400.-",
		ImageURL:    "/assets/soup-1.jpg",
		Category:    "soups",
	},
	{
		ID:          25,
		Name:        "Свиные ребра",
		Composition: "свиные ребра, картофель мини, лук красный, лук зеленый",
		Weight:      "430 г",
		Price:       "690.-",
		ImageURL:    "/assets/main-1.jpg",
		Category:    "main-courses",
	},
	{
		ID:          26,
		Name:        "Кальмар с киноа в ореховом соусе",
		Composition: "филе кальмара, киноа, ореховый соус, микрозелень, перец чили",
		Weight:      "310 г",
		Price:       "650.-",
		ImageURL:    "/assets/main-2.jpg",
		Category:    "main-courses",
	},
	{
		ID:       27,
		Name:     "«Delmonico» Стейк стриплойн",
		Legend:   "Впервые подавался в ресторане Нью-Йорка с одноименным названием.",
		Weight:   "475 г",
		Price:    "1900.-",
		ImageURL: "/assets/main-3.jpg",
		Category: "main-courses",
	},
	{
		ID:          28,
		Name:        "Судак запечённый по-кронштадтски",
		Composition: "Филе судака, сливочное масло, картофельное пюре, редис свежий, цитрусовая заправка, соус галандэз",
		Legend:      "В XIX веке Кронштадт славился своими рыбными рядами у Гостиного двора, где местные рыбаки торговали уловом с Финского залива. По этому рецепту судака подавали в русских трактирах, как знак уважения к гостю.",
		Weight:      "310 г",
		Price:       "850.-",
		ImageURL:    "/assets/main-1.jpg",
		Category:    "main-courses",
	},
	{
		ID:          29,
		Name:        "Судак сувид с лимонным ризотто",
		Composition: "Филе судака, рис арборио, сливки, лимон, микрозелень",
		Weight:      "330 г",
		Price:       "840.-",
		ImageURL:    "/assets/main-2.jpg",
		Category:    "main-courses",
	},
	{
		ID:          30,
		Name:        "«Конфи» Утиная ножка",
		Composition: "утиный окорок, булгур, соус хойсин, микрозелень, сливочное масло, сыр пармезан",
		Legend:      "После Русско-японской войны этот рецепт попал в меню офицерского морского собрания Кронштадта. Сегодня мы воссоздали его по записям из дневника кока крейсера «Аврора».",
		Weight:      "320 г",
		Price:       "750.-",
		ImageURL:    "/assets/main-3.jpg",
		Category:    "main-courses",
	},
	{
		ID:          31,
		Name:        "«Говяжьи щечки» По рецепту Огюста Эскофье",
		Composition: "говяжья томленая щека, птитим, соус демигляс, микрозелень",
		Legend:      "История потребления говяжьих щечек уходит корнями в европейскую крестьянскую кухню. Их использовали в блюдах, где медленное тушение позволяло сделать жесткие части мягкими и вкусными. Первым, кто начал готовить их в высокой кухне, стал шеф-повар Огюст Эскофье.",
		Weight:      "250 г",
		Price:       "1100.-",
		ImageURL:    "/assets/main-1.jpg",
		Category:    "main-courses",
	},
	{
		ID:          32,
		Name:        "«По щучьему велению» Котлеты из щуки",
		Composition: "филе щуки, сухари панко, картофельное пюре, микрозелень",
		Legend:      "Любимое блюдо рыбаков. На Руси подавали котлеты приготовленные в печи.",
		Weight:      "300 г",
		Price:       "690.-",
		ImageURL:    "/assets/main-2.jpg",
		Category:    "main-courses",
	},
	{
		ID:          33,
		Name:        "«Морепродукты по-деревенски» Два бокала вина Riesling в подарок",
		Composition: "филе кальмара, мидии, креветки, гребешок, лимон, зелень, томаты черри",
		Weight:      "450 г",
		Price:       "1500.-",
		ImageURL:    "/assets/main-3.jpg",
		Category:    "main-courses",
	},
	{
		ID:          34,
		Name:        "«Морская карусель» Пельмени с рыбой Из меню императорской яхты «Штандарт»",
		Composition: "форель, судак, тунец, горбуша, лук, морковь, тесто яичное",
		Legend:      "В 1887 году кронштадтские моряки, стоявшие на рейде в греческом Пирее, подсмотрели у местных рыбаков рецепт пельменей с тунцом. Вернувшись домой, они создали «карусель» из четырёх сортов рыбы: нежная форель, плотный тунец, судак и горбуша . Эти пельмени подавали даже на императорской яхте «Штандарт».",
		Weight:      "300 г",
		Price:       "690.-",
		ImageURL:    "/assets/dumpling-2.jpg",
		Category:    "dumplings",
	},
	{
		ID:          35,
		Name:        "«Северный дозор» Пельмени с олениной",
		Composition: "мясо оленины, специи,тесто яичное",
		Legend:      "В 1879 году русские купцы, торговавшие пушниной в Сибири, переняли у ненцев секрет: оленину для пельменей надо смешивать с ледяной водой — тогда мясо остаётся сочным даже после варки. Эти пельмени спасали полярных исследователей в экспедиции.",
		Weight:      "300 г",
		Price:       "590.-",
		ImageURL:    "/assets/dumpling-1.jpg",
		Category:    "dumplings",
	},
	{
		ID:          36,
		Name:        "«Виртиняй» Вареники с картошкой",
		Composition: "тесто, отварной картофель, жаренный лук",
		Legend:      "Одно из самых излюбленных блюд на Руси, которое лепили на Масленницу, Рождество и свадьбы.",
		Weight:      "315 г",
		Price:       "450.-",
		ImageURL:    "/assets/dumpling-2.jpg",
		Category:    "dumplings",
	},
	{
		ID:          37,
		Name:        "«Римская карбонара с балтийским характером»",
		Composition: "бекон, сливки, яичный желток, сыр пармезан,черный перец",
		Weight:      "250 г",
		Price:       "600.-",
		ImageURL:    "/assets/pasta-1.jpg",
		Category:    "pastas",
	},
	{
		ID:          38,
		Name:        "«Аль помодоро» Паста с томатами и свежим базиликом",
		Composition: "томаты, базилик, соус наполи",
		Weight:      "260 г",
		Price:       "530.-",
		ImageURL:    "/assets/pasta-2.jpg",
		Category:    "pastas",
	},
	{
		ID:          39,
		Name:        "Паста с курицей, вешенками и ореховым соусом",
		Composition: "филе куриное, грибы вешенки, сыр пармезан, соус ореховый",
		Weight:      "390 г",
		Price:       "690.-",
		ImageURL:    "/assets/pasta-3.jpg",
		Category:    "pastas",
	},
	{
		ID:          40,
		Name:        "Паста с морепродуктами",
		Composition: "мидии, креветки, кальмар, соус наполи, петрушка, чеснок",
		Weight:      "340 г",
		Price:       "690.-",
		ImageURL:    "/assets/pasta-1.jpg",
		Category:    "pastas",
	},
	{
		ID:       41,
		Name:     "Маргарита",
		Weight:   "420 г",
		Price:    "630.-",
		ImageURL: "/assets/pizza-1.jpg",
		Category: "pizzas",
	},
	{
		ID:          42,
		Name:        "Пицца 4 сыра",
		Composition: "Сыр моцарелла, сыр дор блю, сыр пармезан, сыр бри, оливковое масло",
		Weight:      "420 г",
		Price:       "750.-",
		ImageURL:    "/assets/pizza-2.jpg",
		Category:    "pizzas",
	},
	{
		ID:          43,
		Name:        "Пицца с беконом и маскарпоне",
		Composition: "Бекон, сыр маскарпоне, сыр моцарелла, соус наполи, зелень",
		Weight:      "550 г",
		Price:       "850.-",
		ImageURL:    "/assets/pizza-3.jpg",
		Category:    "pizzas",
	},
	{
		ID:          44,
		Name:        "Пеперони",
		Composition: "Колбаса пеперони, сыр моцарелла, соус наполи",
		Weight:      "440 г",
		Price:       "700.-",
		ImageURL:    "/assets/pizza-1.jpg",
		Category:    "pizzas",
	},
	{
		ID:          45,
		Name:        "Пицца с баклажаном и соусом песто",
		Composition: "Баклажан гриль, моцарелла, соус наполи, соус песто, сыр пармезан",
		Weight:      "450 г",
		Price:       "680.-",
		ImageURL:    "/assets/pizza-2.jpg",
		Category:    "pizzas",
	},
	{
		ID:          46,
		Name:        "Пицца с ветчиной и грибами",
		Composition: "Ветчина индейки, грибы шампиньоны, сыр моцарелла, соус наполи, зелень",
		Weight:      "470 г",
		Price:       "780.-",
		ImageURL:    "/assets/pizza-3.jpg",
		Category:    "pizzas",
	},
	{
		ID:       47,
		Name:     "Фокачча с розмарином",
		Weight:   "290 г",
		Price:    "300.-",
		ImageURL: "/assets/bread.jpg",
		Category: "breads",
	},
	{
		ID:       48,
		Name:     "Хлебная корзина",
		Weight:   "330 г",
		Price:    "340.-",
		ImageURL: "/assets/bread.jpg",
		Category: "breads",
	},
	{
		ID:          49,
		Name:        "Мини ролл с угрем",
		Composition: "Рис, угорь, нори, унаги соус, кунжут",
		Weight:      "130 г",
		Price:       "480.-",
		ImageURL:    "/assets/sushi-1.jpg",
		Category:    "sushis",
	},
	{
		ID:          50,
		Name:        "Мини ролл с тунцом",
		Composition: "Рис, тунец, нори, унаги соус, кунжут",
		Weight:      "130 г",
		Price:       "430.-",
		ImageURL:    "/assets/sushi-2.jpg",
		Category:    "sushis",
	},
	{
		ID:          51,
		Name:        "Мини ролл с лососем",
		Composition: "Рис, лосось, нори, унаги соус, кунжут",
		Weight:      "130 г",
		Price:       "450.-",
		ImageURL:    "/assets/sushi-3.jpg",
		Category:    "sushis",
	},
	{
		ID:          52,
		Name:        "Ролл Филадельфия с лососем",
		Composition: "Филе лосось, сыр творожный, огурец, авокадо, микрозелень, соус «сладкая соя», рис, нори",
		Weight:      "270 г",
		Price:       "800.-",
		ImageURL:    "/assets/sushi-1.jpg",
		Category:    "sushis",
	},
	{
		ID:          53,
		Name:        "Ролл Филадельфия с угрем",
		Composition: "рис, угорь, авокадо, огурец, соус унаги",
		Weight:      "260 г",
		Price:       "680.-",
		ImageURL:    "/assets/sushi-2.jpg",
		Category:    "sushis",
	},
	{
		ID:          54,
		Name:        "Гриль ролл с угрем и Японским омлетом",
		Composition: "Угорь, японский омлет,творожный сыр, рис, нори, унаги соус, кунжут, лук зеленый, луковые чипсы",
		Weight:      "255 г",
		Price:       "720.-",
		ImageURL:    "/assets/sushi-3.jpg",
		Category:    "sushis",
	},
	{
		ID:          55,
		Name:        "Гриль ролл снежный краб с японским омлетом",
		Composition: "Рис, нори, снежный краб, японский омлет, творожный сыр,икра тобико, лук зеленый, микрозелень, унаги соус, кунжут, кани соус",
		Weight:      "250 г",
		Price:       "650.-",
		ImageURL:    "/assets/sushi-1.jpg",
		Category:    "sushis",
	},
	{
		ID:          56,
		Name:        "Гриль ролл с мидиями",
		Composition: "Рис, нори, снежный краб, гребешок, японский омлет, творожный сыр,икра тобико, лук зеленый, микрозелень, унаги соус, кунжут, кани соус",
		Weight:      "260 г",
		Price:       "740.-",
		ImageURL:    "/assets/sushi-2.jpg",
		Category:    "sushis",
	},
	{
		ID:          57,
		Name:        "Гриль Ролл с гребешком и крабом",
		Composition: "Рис, нори, лосось, угорь, тунец, кляр, микс салата, соус манго, соус ореховый",
		Weight:      "340 г",
		Price:       "790.-",
		ImageURL:    "/assets/sushi-3.jpg",
		Category:    "sushis",
	},
	{
		ID:          58,
		Name:        "Сашими из тунца",
		Composition: "филе тунца, редис, кинза, перец шичими",
		Weight:      "130 г",
		Price:       "430.-",
		ImageURL:    "/assets/sushi-1.jpg",
		Category:    "sushis",
	},
	{
		ID:          59,
		Name:        "Сашими из лосося",
		Composition: "филе лосося, огурец, микрозелень, соус понзу",
		Weight:      "150 г",
		Price:       "620.-",
		ImageURL:    "/assets/sushi-2.jpg",
		Category:    "sushis",
	},
	{
		ID:          60,
		Name:        "Сашими из гребешка с трюфельным маслом",
		Composition: "гребешок, трюфельное масло, микрозелень, соус терияки, кунжут",
		Weight:      "90 г",
		Price:       "620.-",
		ImageURL:    "/assets/sushi-3.jpg",
		Category:    "sushis",
	},
	{
		ID:          61,
		Name:        "«Тысяча леппестков» Мильфей",
		Composition: "слоеное тесто, заварной крем,ягодный соус, сезонные фрукты",
		Legend:      "По легенде десерт появился в Петербурге в 1912 году, к юбилею победы над Францией. Тогда его готовили в форме треуголки, а рассыпчатые крошки как снег.",
		Weight:      "200 г",
		Price:       "440.-",
		ImageURL:    "/assets/dessert-1.jpg",
		Category:    "desserts",
	},
	{
		ID:          62,
		Name:        "«Чёрная жемчужина» Шоколадный Фондан",
		Composition: "шоколадный фондан, подается с ванильным мороженым и сезонными фруктами",
		Weight:      "170 г",
		Price:       "460.-",
		ImageURL:    "/assets/dessert-2.jpg",
		Category:    "desserts",
	},
	{
		ID:       63,
		Name:     "«Солнце Азии» Чизкейк",
		Legend:   "В 1887 году кронштадтский капитан дальнего плавания Иван Соколов привёз из Сингапура диковинные плоды — манго и личи. В портовой кондитерской «Северная пальма» их впервые смешали с нежным сырным кремом, создав незабываемый десерт.",
		Weight:   "230 г",
		Price:    "790.-",
		ImageURL: "/assets/dessert-1.jpg",
		Category: "desserts",
	},
	{
		ID:       64,
		Name:     "Мороженое/сорбет в ассортименте",
		Weight:   "50 г",
		Price:    "100.-",
		ImageURL: "/assets/dessert-2.jpg",
		Category: "desserts",
	},
}
