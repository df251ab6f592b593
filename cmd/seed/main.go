package main

import (
	"log"
	"os"

	"github.com/yourusername/safety-training-api/internal/config"
	"github.com/yourusername/safety-training-api/internal/domain/entity"
	pgRepo "github.com/yourusername/safety-training-api/internal/repository/postgres"
	"github.com/yourusername/safety-training-api/pkg/database"
)

// seedQuestions — стартовый банк вопросов по охране труда.
// Ключи чередуются, чтобы у экзамена не было перекоса в сторону «верно».
var seedQuestions = []entity.Question{
	{QuestionText: "Перед началом работ необходимо пройти инструктаж по технике безопасности", IsCorrectTrue: true},
	{QuestionText: "Каску можно не надевать, если работы длятся меньше пяти минут", IsCorrectTrue: false},
	{QuestionText: "Защитные очки обязательны при работе с углошлифовальной машиной", IsCorrectTrue: true},
	{QuestionText: "Курить разрешается в любом месте строительной площадки", IsCorrectTrue: false},
	{QuestionText: "О любом несчастном случае нужно немедленно сообщить руководителю работ", IsCorrectTrue: true},
	{QuestionText: "Неисправным электроинструментом можно пользоваться, если работать осторожно", IsCorrectTrue: false},
	{QuestionText: "Работы на высоте выше 1,8 метра требуют страховочной привязи", IsCorrectTrue: true},
	{QuestionText: "Ограждения опасных зон можно убирать, если они мешают проходу", IsCorrectTrue: false},
	{QuestionText: "Перед использованием лестницы нужно проверить ее исправность", IsCorrectTrue: true},
	{QuestionText: "Грузоподъемные механизмы может обслуживать любой работник", IsCorrectTrue: false},
	{QuestionText: "Средства индивидуальной защиты выдаются работнику бесплатно", IsCorrectTrue: true},
	{QuestionText: "Проходы и выходы разрешается загромождать материалами на короткое время", IsCorrectTrue: false},
	{QuestionText: "При работе в замкнутом пространстве необходим наблюдающий снаружи", IsCorrectTrue: true},
	{QuestionText: "Защитные перчатки не нужны при работе с химическими веществами", IsCorrectTrue: false},
	{QuestionText: "Огнетушитель должен находиться в доступном и обозначенном месте", IsCorrectTrue: true},
	{QuestionText: "Под поднятым грузом можно проходить, если идти быстро", IsCorrectTrue: false},
	{QuestionText: "Перед ремонтом оборудование должно быть отключено и обесточено", IsCorrectTrue: true},
	{QuestionText: "Сигнальную ленту можно пересекать, если опасности не видно", IsCorrectTrue: false},
	{QuestionText: "Работник вправе отказаться от работы, угрожающей его жизни", IsCorrectTrue: true},
	{QuestionText: "Алкоголь в малых дозах на рабочем месте допустим", IsCorrectTrue: false},
	{QuestionText: "Аптечка первой помощи должна быть укомплектована и доступна", IsCorrectTrue: true},
	{QuestionText: "Защитную обувь можно заменить обычной, если она удобнее", IsCorrectTrue: false},
	{QuestionText: "При пожаре в первую очередь нужно оповестить людей и вызвать пожарных", IsCorrectTrue: true},
	{QuestionText: "Электрощитовую разрешается использовать как складское помещение", IsCorrectTrue: false},
	{QuestionText: "Рабочее место по окончании смены необходимо привести в порядок", IsCorrectTrue: true},
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	questionRepo := pgRepo.NewQuestionRepo(db)

	// Банк не засеивается повторно
	existing, err := questionRepo.List()
	if err != nil {
		log.Printf("Failed to check existing questions: %v", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		log.Printf("[Seed] В банке уже %d вопросов, пропускаю", len(existing))
		return
	}

	if err := questionRepo.CreateBatch(seedQuestions); err != nil {
		log.Printf("Failed to seed questions: %v", err)
		os.Exit(1)
	}

	log.Printf("[Seed] Засеяно %d вопросов", len(seedQuestions))
}
