package inmemdb

import (
	"context"
	"sort"

	"github.com/mkaleko/shule/core/department"
)

type departmentRepository struct {
	db *departmentTable
}

func NewDepartmentRepository(db *DB) department.Repository {
	return &departmentRepository{db: db.department}
}

func (repo *departmentRepository) query() []department.Department {
	departments := make([]department.Department, 0, len(repo.db.table))
	for _, d := range repo.db.table {
		departments = append(departments, *d)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].ID < departments[j].ID })
	return departments
}

func (repo *departmentRepository) QueryAllDepartments(ctx context.Context) ([]department.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.query(), nil
}

func (repo *departmentRepository) GetDepartmentByID(ctx context.Context, id int) (department.Department, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if d, ok := repo.db.table[id]; ok {
		return *d, nil
	}
	return department.Department{}, department.ErrNotFound
}

func (repo *departmentRepository) CreateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	d.ID = repo.db.pkCount
	repo.db.table[d.ID] = &d
	return d, nil
}

func (repo *departmentRepository) UpdateDepartment(ctx context.Context, d department.Department) (department.Department, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[d.ID]; !ok {
		return department.Department{}, department.ErrNotFound
	}
	repo.db.table[d.ID] = &d
	return d, nil
}

func (repo *departmentRepository) DeleteDepartmentsByID(ctx context.Context, ids ...int) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, id := range ids {
		delete(repo.db.table, id)
	}
	return nil
}
