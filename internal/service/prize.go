package service

import "crowdfund-service/internal/model"

// ManagerBonus: фиксированное вознаграждение автору проекта за его завершение.
const ManagerBonus int64 = 540

// ProjectPrize делит призовой фонд поровну между участниками команды
// и возвращает их число и награду на одного. Остаток от деления не выплачивается.
func ProjectPrize(_ model.Project, team []model.TeamMembership, pool int64) (int, int64) {
	count := len(team)
	if count == 0 || pool <= 0 {
		return count, 0
	}
	return count, pool / int64(count)
}
